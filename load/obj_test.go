// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"strings"
	"testing"
)

const triangleObj = `
mtllib scene.mtl
o Floor
usemtl White
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vn 0.0 0.0 1.0
f 1//1 2//1 3//1
o Light
usemtl Glow
v 0.0 2.0 0.0
v 1.0 2.0 0.0
v 0.0 3.0 0.0
vn 0.0 0.0 1.0
f 4//2 5//2 6//2
`

func TestObjParsesObjectsInOrder(t *testing.T) {
	data, err := Obj(strings.NewReader(triangleObj), "scene.obj")
	if err != nil {
		t.Fatalf("Obj: %v", err)
	}
	if data.Mtllib != "scene.mtl" {
		t.Errorf("Mtllib = %q, want scene.mtl", data.Mtllib)
	}
	if len(data.Positions) != 6 || len(data.Normals) != 2 {
		t.Fatalf("got %d positions, %d normals", len(data.Positions), len(data.Normals))
	}
	if len(data.Objects) != 2 {
		t.Fatalf("got %d objects, want 2", len(data.Objects))
	}
	if data.Objects[0].Name != "Floor" || data.Objects[1].Name != "Light" {
		t.Errorf("objects out of order: %q, %q", data.Objects[0].Name, data.Objects[1].Name)
	}
	if data.Objects[0].Triangles[0].Material != "White" {
		t.Errorf("Floor triangle material = %q, want White", data.Objects[0].Triangles[0].Material)
	}
	if data.Objects[1].Triangles[0].Material != "Glow" {
		t.Errorf("Light triangle material = %q, want Glow", data.Objects[1].Triangles[0].Material)
	}
	// face indices are 1-based in the file, zero-based in TriangleData.
	tri := data.Objects[0].Triangles[0]
	if tri.V0 != 0 || tri.V1 != 1 || tri.V2 != 2 || tri.Normal != 0 {
		t.Errorf("triangle indices = %+v, want {0 1 2 Normal:0}", tri)
	}
}

func TestObjTriangulatesQuads(t *testing.T) {
	const quad = `
o Panel
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`
	data, err := Obj(strings.NewReader(quad), "panel.obj")
	if err != nil {
		t.Fatalf("Obj: %v", err)
	}
	if len(data.Objects[0].Triangles) != 2 {
		t.Fatalf("got %d triangles from a quad, want 2", len(data.Objects[0].Triangles))
	}
}

func TestObjRejectsEmptyFile(t *testing.T) {
	if _, err := Obj(strings.NewReader(""), "empty.obj"); err == nil {
		t.Error("expected an error for a file with no vertex data")
	}
}

func TestObjRejectsMalformedVertex(t *testing.T) {
	const bad = "o X\nv not a number\n"
	if _, err := Obj(strings.NewReader(bad), "bad.obj"); err == nil {
		t.Error("expected a parse error for a malformed vertex line")
	}
}
