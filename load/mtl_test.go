// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"strings"
	"testing"
)

const twoMaterialsMtl = `
newmtl White
Ka 0.1 0.1 0.1
Kd 0.8 0.6 0.2
Ks 0.0 0.0 0.0
d 1.0

newmtl Glow
Ka 0.0 0.0 0.0
Kd 0.0 0.0 0.0
Ke 5.0 5.0 5.0
Ni 1.5
illum 2
`

func TestMtlParsesMultipleMaterials(t *testing.T) {
	materials, err := Mtl(strings.NewReader(twoMaterialsMtl), "scene.mtl")
	if err != nil {
		t.Fatalf("Mtl: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("got %d materials, want 2", len(materials))
	}
	white := materials[0]
	if white.Name != "White" {
		t.Errorf("materials[0].Name = %q, want White", white.Name)
	}
	if white.Diffuse != (Vec3{0.8, 0.6, 0.2}) {
		t.Errorf("White.Diffuse = %+v, want {0.8 0.6 0.2}", white.Diffuse)
	}
	if white.Transparency != 1.0 {
		t.Errorf("White.Transparency = %v, want 1.0", white.Transparency)
	}

	glow := materials[1]
	if glow.Emissive != (Vec3{5.0, 5.0, 5.0}) {
		t.Errorf("Glow.Emissive = %+v, want {5 5 5}", glow.Emissive)
	}
	if glow.IndexOfRefraction != 1.5 {
		t.Errorf("Glow.IndexOfRefraction = %v, want 1.5", glow.IndexOfRefraction)
	}
}

func TestMtlRejectsColorOutsideBlock(t *testing.T) {
	const stray = "Kd 0.1 0.1 0.1\n"
	if _, err := Mtl(strings.NewReader(stray), "stray.mtl"); err == nil {
		t.Error("expected an error for a color line with no preceding newmtl")
	}
}

func TestMtlDefaultsIndexOfRefraction(t *testing.T) {
	const oneMaterial = "newmtl Plain\nKd 1 1 1\n"
	materials, err := Mtl(strings.NewReader(oneMaterial), "plain.mtl")
	if err != nil {
		t.Fatalf("Mtl: %v", err)
	}
	if materials[0].IndexOfRefraction != 1.0 {
		t.Errorf("default IndexOfRefraction = %v, want 1.0", materials[0].IndexOfRefraction)
	}
}
