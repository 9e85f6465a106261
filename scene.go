// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

// Scene is an ordered collection of objects sharing one mesh. It is
// immutable during rendering and exposes a single Intersect operation:
// a linear scan over objects, maintaining the globally closest hit.
// Objects are not sorted; for M objects of average k triangles,
// worst-case cost is O(M·k), reduced in expectation by AABB rejection
// in Object.Intersect.
type Scene struct {
	Objects []Object
	Mesh    *TriangleMesh
}

// NewScene builds a scene over a shared mesh and its objects.
func NewScene(mesh *TriangleMesh, objects []Object) Scene {
	return Scene{Objects: objects, Mesh: mesh}
}

// Material resolves a material index against the scene's shared mesh.
func (s Scene) Material(index int) Material { return s.Mesh.Material(index) }

// Intersect linearly scans every object, returning the closest hit
// across the whole scene, or false if the ray misses everything.
func (s Scene) Intersect(ray Ray, tMin, tMax float32) (Hit, bool) {
	var closest Hit
	found := false
	for _, obj := range s.Objects {
		if hit, ok := obj.Intersect(ray, tMin, tMax); ok {
			if !found {
				closest, found = hit, true
			} else {
				closest = Closest(closest, hit)
			}
		}
	}
	return closest, found
}
