// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective model producing primary rays, optionally
// jittered for anti-aliased multi-sampling. Built from (position,
// target, z_near, z_far, vertical FOV in degrees, width, height); the
// view and projection matrices and their inverses are computed once at
// construction and cached.
type Camera struct {
	position mgl32.Vec3
	width    int
	height   int

	invProjection mgl32.Mat4
	invView       mgl32.Mat4
}

// NewCamera builds a right-handed look-at/perspective camera (world up
// +Y) and caches the inverse view and inverse projection matrices used
// by ray generation.
func NewCamera(position, target mgl32.Vec3, zNear, zFar, verticalFOVDeg float32, width, height int) Camera {
	aspect := float32(width) / float32(height)
	projection := mgl32.Perspective(mgl32.DegToRad(verticalFOVDeg), aspect, zNear, zFar)
	view := mgl32.LookAtV(position, target, mgl32.Vec3{0, 1, 0})
	return Camera{
		position:      position,
		width:         width,
		height:        height,
		invProjection: projection.Inv(),
		invView:       view.Inv(),
	}
}

// Position is the camera's world-space origin; every ray it produces
// originates here.
func (c Camera) Position() mgl32.Vec3 { return c.position }

// Dimensions reports the image size in pixels.
func (c Camera) Dimensions() (width, height int) { return c.width, c.height }

// Ray produces the primary ray through pixel (x, y), per §4.6: build
// the normalized device coordinate, flip Y for top-left image origin,
// unproject through the inverse projection to view space, then rotate
// into world space through the inverse view.
func (c Camera) Ray(x, y float32) Ray {
	return c.rayThrough(x, y)
}

// JitteredRay offsets the pixel center by (ξ1-0.5, ξ2-0.5) before
// generating the ray, required for anti-aliased multi-sampling.
func (c Camera) JitteredRay(x, y int, rnd func() float32) Ray {
	jx := float32(x) + (rnd() - 0.5)
	jy := float32(y) + (rnd() - 0.5)
	return c.rayThrough(jx, jy)
}

func (c Camera) rayThrough(x, y float32) Ray {
	w, h := float32(c.width), float32(c.height)
	ndcX := x/w*2 - 1
	ndcY := -(y/h*2 - 1) // flip Y: image-space origin is top-left.

	target := c.invProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	targetV3 := mgl32.Vec3{target[0] / target[3], target[1] / target[3], target[2] / target[3]}.Normalize()

	dir4 := c.invView.Mul4x1(mgl32.Vec4{targetV3[0], targetV3[1], targetV3[2], 0})
	direction := mgl32.Vec3{dir4[0], dir4[1], dir4[2]}
	return NewRay(c.position, direction)
}

// CameraBuilder constructs a Camera with the defaults from §4.6:
// position (0,0,0), target (0,0,1), z_near 0.1, z_far 100, vertical
// FOV 39.6°, 800x600. This is the builder behind direct Camera
// construction — distinct from the public RayTracer façade's own
// camera defaults in config.go, which differ (see DESIGN.md).
type CameraBuilder struct {
	position       mgl32.Vec3
	target         mgl32.Vec3
	zNear, zFar    float32
	verticalFOV    float32
	width, height  int
}

// NewCameraBuilder returns a builder pre-loaded with §4.6's defaults.
func NewCameraBuilder() CameraBuilder {
	return CameraBuilder{
		position:    mgl32.Vec3{0, 0, 0},
		target:      mgl32.Vec3{0, 0, 1},
		zNear:       0.1,
		zFar:        100,
		verticalFOV: 39.6,
		width:       800,
		height:      600,
	}
}

func (b CameraBuilder) WithPosition(x, y, z float32) CameraBuilder {
	b.position = mgl32.Vec3{x, y, z}
	return b
}

func (b CameraBuilder) WithTarget(x, y, z float32) CameraBuilder {
	b.target = mgl32.Vec3{x, y, z}
	return b
}

func (b CameraBuilder) WithClipping(zNear, zFar float32) CameraBuilder {
	b.zNear, b.zFar = zNear, zFar
	return b
}

func (b CameraBuilder) WithVerticalFOV(fov float32) CameraBuilder {
	b.verticalFOV = fov
	return b
}

func (b CameraBuilder) WithResolution(width, height int) CameraBuilder {
	b.width, b.height = width, height
	return b
}

// Build constructs the Camera from the accumulated parameters.
func (b CameraBuilder) Build() Camera {
	return NewCamera(b.position, b.target, b.zNear, b.zFar, b.verticalFOV, b.width, b.height)
}
