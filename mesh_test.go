// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestMesh() *TriangleMesh {
	positions := []mgl32.Vec3{
		{-1, -1, 5}, {1, -1, 5}, {0, 1, 5},
	}
	normals := []mgl32.Vec3{{0, 0, -1}}
	materials := []Material{{Emissive: mgl32.Vec3{1, 0, 0}}}
	mesh := NewTriangleMesh(positions, normals, materials)
	mesh.AppendTriangles([]TriangleIndex{{V0: 0, V1: 1, V2: 2, Normal: 0, Material: 0}})
	return mesh
}

func TestMeshAppendTrianglesReturnsStartIndex(t *testing.T) {
	mesh := NewTriangleMesh(nil, nil, nil)
	first := mesh.AppendTriangles([]TriangleIndex{{}, {}})
	second := mesh.AppendTriangles([]TriangleIndex{{}})
	if first != 0 || second != 2 {
		t.Errorf("got start indices %d, %d, want 0, 2", first, second)
	}
	if mesh.TriangleCount() != 3 {
		t.Errorf("TriangleCount() = %d, want 3", mesh.TriangleCount())
	}
}

func TestMeshLookupsResolveByIndex(t *testing.T) {
	mesh := newTestMesh()
	if mesh.Position(1) != (mgl32.Vec3{1, -1, 5}) {
		t.Errorf("Position(1) = %+v", mesh.Position(1))
	}
	if mesh.Normal(0) != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Normal(0) = %+v", mesh.Normal(0))
	}
	if mesh.Material(0).Emissive != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Material(0).Emissive = %+v", mesh.Material(0).Emissive)
	}
}
