// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const math32Pi = float32(math.Pi)

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

// Ray is a half-line with an origin and a direction. Direction is not
// required to be normalized; callers that need unit length normalize
// explicitly. A ray with a zero direction is undefined behaviour for
// intersection — callers must not produce one.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay builds a ray from an origin and a direction.
func NewRay(origin, direction mgl32.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At evaluates the ray at parameter t: origin + direction*t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit records where and on what surface a ray first intersected scene
// geometry: the hit point, its surface normal, the distance t along
// the incoming ray, the incoming ray itself, and the hit triangle's
// material index.
type Hit struct {
	Point         mgl32.Vec3
	Normal        mgl32.Vec3
	Distance      float32
	Incoming      Ray
	MaterialIndex int

	// triangleIndex is the index into the owning mesh's flat triangle
	// list, kept so RandomOutgoingRay can recover the triangle's local
	// basis (v0, v1) without the caller threading it through.
	triangleIndex int
}

// RandomOutgoingRay draws a uniform-over-sphere secondary ray in the
// triangle-local basis at this hit, per §4.7: up is the face normal,
// right is normalize(v1-v0) of the hit triangle, forward completes the
// frame. This is deliberately not a hemisphere-clipped or
// cosine-weighted sampler — outgoing rays may point into the surface.
// Reproduced verbatim; see SPEC_FULL.md §9.
func (h Hit) RandomOutgoingRay(mesh *TriangleMesh, rnd func() float32) Ray {
	idx := mesh.TriangleAt(h.triangleIndex)
	v0, v1, _, _ := mesh.triangleVertices(idx)

	up := h.Normal
	right := v1.Sub(v0).Normalize()
	forward := right.Cross(up)

	theta := rnd() * 2 * math32Pi
	phi := rnd() * math32Pi
	sinPhi, cosPhi := sin32(phi), cos32(phi)
	sinTheta, cosTheta := sin32(theta), cos32(theta)
	sx, sy, sz := sinPhi*cosTheta, sinPhi*sinTheta, cosPhi

	direction := right.Mul(sx).Add(forward.Mul(sy)).Add(up.Mul(sz)).Normalize()
	return NewRay(h.Point, direction)
}

// Closest returns the hit with the smaller distance. Ties resolve to
// the first argument (stable) — this matters for reproducible images
// when two triangles are coplanar with the ray.
func Closest(a, b Hit) Hit {
	if a.Distance <= b.Distance {
		return a
	}
	return b
}
