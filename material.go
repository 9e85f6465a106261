// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import "github.com/go-gl/mathgl/mgl32"

// Material is a tuple of optical parameters parsed from an MTL
// `newmtl` block. Only Diffuse and Emissive feed the shading equation
// in §4.8; the remaining fields are parsed and retained but unused —
// no specular reflection, transparency, or refraction is implemented.
// Immutable once parsed.
type Material struct {
	Ambient           mgl32.Vec3
	Diffuse           mgl32.Vec3
	Specular          mgl32.Vec3
	Emissive          mgl32.Vec3
	SpecularHighlight float32
	Transparency      float32
	IndexOfRefraction float32
}

// DefaultMaterial is black everywhere, emitting nothing, with the
// conventional index of refraction of 1.0 for vacuum/air.
func DefaultMaterial() Material {
	return Material{IndexOfRefraction: 1.0}
}
