// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testTriangleVerts() (v0, v1, v2, normal mgl32.Vec3) {
	return mgl32.Vec3{-1, -1, 5}, mgl32.Vec3{1, -1, 5}, mgl32.Vec3{0, 1, 5}, mgl32.Vec3{0, 0, -1}
}

func TestIntersectTriangleOrthogonalHit(t *testing.T) {
	v0, v1, v2, n := testTriangleVerts()
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	hit, ok := intersectTriangle(v0, v1, v2, n, 0, 0, ray, 0.01, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Distance <= 0.01 || hit.Distance >= 100 {
		t.Errorf("distance %v out of (t_min, t_max)", hit.Distance)
	}
	want := ray.At(hit.Distance)
	if hit.Point != want {
		t.Errorf("hit point %+v != ray.At(t) %+v", hit.Point, want)
	}
}

func TestIntersectTriangleMissesOutsideEdges(t *testing.T) {
	v0, v1, v2, n := testTriangleVerts()
	ray := NewRay(mgl32.Vec3{10, 10, 0}, mgl32.Vec3{0, 0, 1})
	if _, ok := intersectTriangle(v0, v1, v2, n, 0, 0, ray, 0.01, 100); ok {
		t.Error("expected a miss well outside the triangle")
	}
}

// A ray lying parallel to the triangle's plane (a == 0) is reported as
// a miss rather than an error (§4.2 step 3, property 11).
func TestIntersectTriangleParallelIsMiss(t *testing.T) {
	v0 := mgl32.Vec3{-1, 0, 5}
	v1 := mgl32.Vec3{1, 0, 5}
	v2 := mgl32.Vec3{0, 0, 6}
	n := mgl32.Vec3{0, 1, 0}
	// ray direction lies in the triangle's own plane (y=0): parallel.
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	if _, ok := intersectTriangle(v0, v1, v2, n, 0, 0, ray, 0.01, 100); ok {
		t.Error("a ray parallel to the triangle's plane must miss")
	}
}

func TestIntersectTriangleRespectsTBounds(t *testing.T) {
	v0, v1, v2, n := testTriangleVerts()
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	if _, ok := intersectTriangle(v0, v1, v2, n, 0, 0, ray, 0.01, 3.0); ok {
		t.Error("expected a miss when t_max is closer than the triangle")
	}
}

func TestClosestPicksSmallerDistanceAndBreaksTiesToFirst(t *testing.T) {
	a := Hit{Distance: 2}
	b := Hit{Distance: 5}
	if got := Closest(a, b); got.Distance != 2 {
		t.Errorf("Closest = %v, want 2", got.Distance)
	}
	tie := Hit{Distance: 2}
	if got := Closest(a, tie); got != a {
		t.Error("tied distances must resolve to the first argument")
	}
}
