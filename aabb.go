// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box: the smallest box with faces
// parallel to the coordinate planes enclosing a set of points. It is
// computed once from triangles and is immutable thereafter.
type AABB struct {
	Min, Max mgl32.Vec3
}

// emptyAABB is the identity box for accumulation: every real point
// shrinks it, and it never intersects anything on its own (an object
// with zero triangles keeps this box and never intersects, per the
// core's failure semantics).
func emptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to also enclose p, returning the new box.
func (b AABB) Extend(p mgl32.Vec3) AABB {
	return AABB{
		Min: componentMin(b.Min, p),
		Max: componentMax(b.Max, p),
	}
}

func componentMin(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min32(a[0], b[0]), min32(a[1], b[1]), min32(a[2], b[2])}
}

func componentMax(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max32(a[0], b[0]), max32(a[1], b[1]), max32(a[2], b[2])}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Intersect is the slab test: a boolean-only culling predicate. It
// computes per-component inverse direction (infinities permitted where
// a component is zero), clamps (t_min, t_max) against the box's near
// and far slabs on every axis, and reports whether any overlap
// remains. A ray tangent to a face (equal t_min/t_max at that face) is
// accepted — the comparison is non-strict.
func (b AABB) Intersect(r Ray, tMin, tMax float32) bool {
	if b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2] {
		return false // empty box: the slab swap below would otherwise invert it.
	}
	invDir := mgl32.Vec3{1 / r.Direction[0], 1 / r.Direction[1], 1 / r.Direction[2]}

	t0 := componentMul(b.Min.Sub(r.Origin), invDir)
	t1 := componentMul(b.Max.Sub(r.Origin), invDir)
	tSmall := componentMin(t0, t1)
	tBig := componentMax(t0, t1)

	tMin = max32(tMin, maxComponent(tSmall))
	tMax = min32(tMax, minComponent(tBig))
	return tMax >= tMin
}

func componentMul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func maxComponent(v mgl32.Vec3) float32 {
	return max32(v[0], max32(v[1], v[2]))
}

func minComponent(v mgl32.Vec3) float32 {
	return min32(v[0], min32(v[1], v[2]))
}
