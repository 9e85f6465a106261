// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import "github.com/go-gl/mathgl/mgl32"

// TriangleMesh is a shared immutable store of vertex positions, face
// normals, materials, and a flat list of triangle-index tuples. It is
// built once (by loadScene, from the load package's parsed data) and then shared read-only by every
// Object and the Scene for the full duration of a render — a plain
// pointer is sufficient shared ownership because its lifetime is
// statically known to span the render (see SPEC_FULL.md §9).
type TriangleMesh struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	materials []Material
	triangles []TriangleIndex
}

// NewTriangleMesh builds a mesh from already-resolved vertex data.
// Triangle indices may be appended afterwards with AppendTriangles —
// positions, normals, and materials must be populated first since
// triangle indices reference them.
func NewTriangleMesh(positions, normals []mgl32.Vec3, materials []Material) *TriangleMesh {
	return &TriangleMesh{
		positions: positions,
		normals:   normals,
		materials: materials,
	}
}

// AppendTriangles extends the mesh's flat triangle list, returning the
// index of the first newly appended triangle (the object's
// triangle_start).
func (m *TriangleMesh) AppendTriangles(triangles []TriangleIndex) int {
	start := len(m.triangles)
	m.triangles = append(m.triangles, triangles...)
	return start
}

// TriangleCount reports how many triangles the mesh currently holds.
func (m *TriangleMesh) TriangleCount() int { return len(m.triangles) }

// Material looks up a material by index.
func (m *TriangleMesh) Material(index int) Material { return m.materials[index] }

// Position looks up a vertex position by index.
func (m *TriangleMesh) Position(index int) mgl32.Vec3 { return m.positions[index] }

// Normal looks up a face normal by index.
func (m *TriangleMesh) Normal(index int) mgl32.Vec3 { return m.normals[index] }

// triangleVertices resolves a TriangleIndex's three vertex positions
// and face normal against the mesh's backing arrays.
func (m *TriangleMesh) triangleVertices(idx TriangleIndex) (v0, v1, v2, normal mgl32.Vec3) {
	return m.positions[idx.V0], m.positions[idx.V1], m.positions[idx.V2], m.normals[idx.Normal]
}

// TriangleAt resolves the triangle index at the given position in the
// mesh's flat triangle list.
func (m *TriangleMesh) TriangleAt(i int) TriangleIndex { return m.triangles[i] }
