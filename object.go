// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

// Object is a named contiguous range of triangle indices into a shared
// TriangleMesh, plus its precomputed AABB. Built once per scene; the
// AABB tightly encloses the referenced triangle range and never
// changes afterwards.
type Object struct {
	Name          string
	TriangleStart int
	TriangleCount int
	Bounds        AABB

	mesh *TriangleMesh
}

// NewObject builds an object over [triangleStart, triangleStart+count)
// of mesh's flat triangle list, computing its bounding box once. An
// object with zero triangles gets an empty AABB and never intersects.
func NewObject(name string, triangleStart, triangleCount int, mesh *TriangleMesh) Object {
	bounds := emptyAABB()
	for i := triangleStart; i < triangleStart+triangleCount; i++ {
		idx := mesh.TriangleAt(i)
		v0, v1, v2, _ := mesh.triangleVertices(idx)
		bounds = bounds.Extend(v0).Extend(v1).Extend(v2)
	}
	return Object{
		Name:          name,
		TriangleStart: triangleStart,
		TriangleCount: triangleCount,
		Bounds:        bounds,
		mesh:          mesh,
	}
}

// Intersect rejects against the object's AABB first — the single-level
// culling that is the only acceleration structure this renderer uses —
// then linearly scans the object's triangle range, keeping the closest
// hit.
func (o Object) Intersect(ray Ray, tMin, tMax float32) (Hit, bool) {
	if !o.Bounds.Intersect(ray, tMin, tMax) {
		return Hit{}, false
	}

	var closest Hit
	found := false
	for i := o.TriangleStart; i < o.TriangleStart+o.TriangleCount; i++ {
		idx := o.mesh.TriangleAt(i)
		v0, v1, v2, normal := o.mesh.triangleVertices(idx)
		if hit, ok := intersectTriangle(v0, v1, v2, normal, idx.Material, i, ray, tMin, tMax); ok {
			if !found {
				closest, found = hit, true
			} else {
				closest = Closest(closest, hit)
			}
		}
	}
	return closest, found
}
