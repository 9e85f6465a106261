// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// The ray produced by Ray(x,y) always originates at the camera's
// position, for any pixel (property 5).
func TestCameraRayOriginatesAtPosition(t *testing.T) {
	cam := NewCameraBuilder().
		WithPosition(1, 2, 3).
		WithTarget(1, 2, 10).
		WithResolution(64, 64).
		Build()

	for _, p := range [][2]float32{{0, 0}, {32, 32}, {63, 63}} {
		ray := cam.Ray(p[0], p[1])
		if ray.Origin != cam.Position() {
			t.Errorf("Ray(%v).Origin = %+v, want %+v", p, ray.Origin, cam.Position())
		}
	}
}

func TestCameraLooksTowardTargetAtScreenCenter(t *testing.T) {
	cam := NewCameraBuilder().
		WithPosition(0, 0, 0).
		WithTarget(0, 0, 1).
		WithResolution(64, 64).
		Build()
	ray := cam.Ray(32, 32)
	dir := ray.Direction.Normalize()
	if dot := dir.Dot(mgl32.Vec3{0, 0, 1}); dot < 0.99 {
		t.Errorf("center ray direction %+v not aligned with +Z target, dot=%v", dir, dot)
	}
}

func TestCameraJitteredRayStaysNearPixelCenter(t *testing.T) {
	cam := NewCameraBuilder().WithResolution(64, 64).Build()
	fixed := func() float32 { return 0.5 } // no jitter: reduces to the exact-center ray.
	jittered := cam.JitteredRay(32, 32, fixed)
	exact := cam.Ray(32, 32)
	if jittered.Direction != exact.Direction {
		t.Errorf("jitter at (0.5,0.5) should reduce to the unjittered ray")
	}
}

func TestCameraBuilderDefaults(t *testing.T) {
	cam := NewCameraBuilder().Build()
	w, h := cam.Dimensions()
	if w != 800 || h != 600 {
		t.Errorf("default resolution = %dx%d, want 800x600", w, h)
	}
	if cam.Position() != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("default position = %+v, want origin", cam.Position())
	}
}
