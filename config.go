// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

// config.go is the public fluent builder façade: a RayTracer gathers a
// scene directory, an OBJ file, a camera, and render parameters, then
// renders or renders-and-saves. It reduces the construction API
// footprint the same way gazed-vu's Attr/Config functional-options
// pattern did for the engine window, but since every field here has a
// spec-mandated default, a chained setter style reads more naturally
// than a variadic option list.

import "github.com/go-gl/mathgl/mgl32"

// RayTracer is the entry point most callers use: it owns the defaults
// from §6.2 and exposes With* setters to override any of them before
// calling Render or RenderSave.
type RayTracer struct {
	directory string
	objFile   string

	cameraPosition mgl32.Vec3
	cameraTarget   mgl32.Vec3
	verticalFOV    float32
	zNear, zFar    float32
	width, height  int

	sampleCount    int
	recursionDepth int
	seed           uint32
}

// NewRayTracer builds a RayTracer for the OBJ file objFile found under
// directory — both required, since there is no reasonable default
// scene to fall back to. All other fields take the §6.2 defaults:
// camera at the origin looking at the origin, 39.6° vertical FOV,
// clipping (0.1, 1000.0) — note this differs from the Camera
// component's own default z_far of 100 in §4.6; both are intentional,
// see DESIGN.md — resolution 800x600, one sample, one bounce.
func NewRayTracer(directory, objFile string) *RayTracer {
	return &RayTracer{
		directory:      directory,
		objFile:        objFile,
		cameraPosition: mgl32.Vec3{0, 0, 0},
		cameraTarget:   mgl32.Vec3{0, 0, 0},
		verticalFOV:    39.6,
		zNear:          0.1,
		zFar:           1000.0,
		width:          800,
		height:         600,
		sampleCount:    1,
		recursionDepth: 1,
		seed:           1,
	}
}

func (rt *RayTracer) WithCamera(position, target mgl32.Vec3) *RayTracer {
	rt.cameraPosition, rt.cameraTarget = position, target
	return rt
}

func (rt *RayTracer) WithVerticalFOV(degrees float32) *RayTracer {
	rt.verticalFOV = degrees
	return rt
}

func (rt *RayTracer) WithClipping(zNear, zFar float32) *RayTracer {
	rt.zNear, rt.zFar = zNear, zFar
	return rt
}

func (rt *RayTracer) WithResolution(width, height int) *RayTracer {
	rt.width, rt.height = width, height
	return rt
}

func (rt *RayTracer) WithSampleCount(n int) *RayTracer {
	rt.sampleCount = n
	return rt
}

func (rt *RayTracer) WithRecursionDepth(n int) *RayTracer {
	rt.recursionDepth = n
	return rt
}

func (rt *RayTracer) WithSeed(seed uint32) *RayTracer {
	rt.seed = seed
	return rt
}

// validate checks the fields NewRayTracer cannot itself default:
// directory and objFile must be non-empty, and the numeric knobs must
// be positive. Returns a *ConfigError naming the first offending
// field.
func (rt *RayTracer) validate() error {
	switch {
	case rt.directory == "":
		return &ConfigError{Field: "directory"}
	case rt.objFile == "":
		return &ConfigError{Field: "obj_file"}
	case rt.width <= 0:
		return &ConfigError{Field: "resolution.width"}
	case rt.height <= 0:
		return &ConfigError{Field: "resolution.height"}
	case rt.sampleCount <= 0:
		return &ConfigError{Field: "sample_count"}
	case rt.recursionDepth <= 0:
		return &ConfigError{Field: "recursion_depth"}
	}
	return nil
}

// build loads the scene from disk and assembles the Renderer behind
// it. Shared by Render and RenderSave.
func (rt *RayTracer) build() (Renderer, error) {
	if err := rt.validate(); err != nil {
		return Renderer{}, err
	}
	scene, err := loadScene(rt.directory, rt.objFile)
	if err != nil {
		return Renderer{}, err
	}
	camera := NewCameraBuilder().
		WithPosition(rt.cameraPosition[0], rt.cameraPosition[1], rt.cameraPosition[2]).
		WithTarget(rt.cameraTarget[0], rt.cameraTarget[1], rt.cameraTarget[2]).
		WithVerticalFOV(rt.verticalFOV).
		WithClipping(rt.zNear, rt.zFar).
		WithResolution(rt.width, rt.height).
		Build()
	renderer := NewRenderer(scene, camera).
		WithSampleCount(rt.sampleCount).
		WithRecursionDepth(rt.recursionDepth).
		WithSeed(rt.seed)
	return renderer, nil
}

// Render loads the configured scene and renders it, returning the
// in-memory image.
func (rt *RayTracer) Render() (*Image, error) {
	renderer, err := rt.build()
	if err != nil {
		return nil, err
	}
	return renderer.Render(), nil
}

// RenderSave renders the configured scene and writes it to path as a
// PNG.
func (rt *RayTracer) RenderSave(path string) error {
	img, err := rt.Render()
	if err != nil {
		return err
	}
	return img.SavePNG(path)
}
