// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import "github.com/go-gl/mathgl/mgl32"

// TriangleIndex is a triangle record stored in a TriangleMesh: three
// zero-based vertex-position indices, one zero-based face-normal
// index, and one zero-based material index.
type TriangleIndex struct {
	V0, V1, V2 int
	Normal     int
	Material   int
}

// triangleEpsilon is the f32 machine epsilon used by Möller-Trumbore
// to detect a ray parallel to the triangle's plane.
const triangleEpsilon = 1.1920929e-7

// intersectTriangle is the Möller-Trumbore ray-triangle intersection
// test, computed in single precision. It returns the hit and true on
// success, or false on a miss (including the "ray parallel to plane"
// degenerate case, which is silently missed rather than treated as an
// error — see §4.11).
func intersectTriangle(v0, v1, v2, normal mgl32.Vec3, materialIndex, triangleIndex int, ray Ray, tMin, tMax float32) (Hit, bool) {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)

	h := ray.Direction.Cross(e1)
	a := e0.Dot(h)
	if a < triangleEpsilon && a > -triangleEpsilon {
		return Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	q := s.Cross(e0)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := f * e1.Dot(q)
	if t <= tMin || t >= tMax {
		return Hit{}, false
	}

	return Hit{
		Point:         ray.At(t),
		Normal:        normal,
		Distance:      t,
		Incoming:      ray,
		MaterialIndex: materialIndex,
		triangleIndex: triangleIndex,
	}, true
}
