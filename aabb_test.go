// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAABBEmptyNeverIntersects(t *testing.T) {
	b := emptyAABB()
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	if b.Intersect(ray, 0, 1000) {
		t.Error("an empty AABB must never intersect")
	}
}

func TestAABBExtendGrowsBounds(t *testing.T) {
	b := emptyAABB()
	b = b.Extend(mgl32.Vec3{-1, -2, -3}).Extend(mgl32.Vec3{4, 5, 6})
	if b.Min != (mgl32.Vec3{-1, -2, -3}) || b.Max != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("got bounds %+v/%+v", b.Min, b.Max)
	}
}

func TestAABBIntersectHitsCenteredBox(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	ray := NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1})
	if !b.Intersect(ray, 0.01, 100) {
		t.Error("expected a hit through the box center")
	}
}

func TestAABBIntersectMissesAside(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	ray := NewRay(mgl32.Vec3{10, 10, -5}, mgl32.Vec3{0, 0, 1})
	if b.Intersect(ray, 0.01, 100) {
		t.Error("expected a miss well outside the box")
	}
}

// A ray tangent to an AABB face (equal t_min/t_max at that face) is
// accepted: the slab test's comparison is non-strict (§4.3, property 12).
func TestAABBIntersectAcceptsTangentRay(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	ray := NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1})
	// t_max is exactly the distance to the box's near face.
	if !b.Intersect(ray, 0.01, 4.0) {
		t.Error("a ray whose t_max exactly reaches the box face must be accepted")
	}
}
