// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package rtrace is an offline, unidirectional Monte-Carlo path tracer.
// It consumes a triangle-mesh scene (Wavefront OBJ geometry and MTL
// materials, see the load package) and produces an RGB image by
// integrating incoming radiance at each pixel with a bounded recursive
// walk: stochastic sampling, diffuse bouncing, and emissive
// accumulation.
//
// The rendering core — vectors, rays, AABBs, triangles, the mesh,
// objects, the scene, the camera, and the renderer itself — is the
// only part of this package concerned with correctness of the image.
// OBJ/MTL parsing lives in the load subpackage; PNG encoding is the
// standard library's image/png; an optional GPU compute mirror lives
// in the gpu subpackage behind a build tag.
package rtrace
