// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command rtrace renders an OBJ/MTL scene to a PNG file from the
// command line, driving the rtrace.RayTracer builder façade with
// flags or an optional YAML config file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/brightforge/rtrace"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath     string
		directory      string
		objFile        string
		output         string
		width, height  int
		samples, depth int
		fov            float32
		zNear, zFar    float32
		camX, camY, camZ       float32
		tgtX, tgtY, tgtZ       float32
		seed           uint32
	)

	cmd := &cobra.Command{
		Use:   "rtrace",
		Short: "Offline Monte-Carlo path tracer for OBJ/MTL scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := rtrace.NewRayTracer(directory, objFile)
			if configPath != "" {
				var err error
				rt, err = rtrace.LoadConfig(configPath, rt)
				if err != nil {
					return err
				}
			}

			// Flags only override the config file's values when the
			// caller actually passed them — otherwise an unset flag's
			// zero-value default would silently clobber whatever the
			// config file set.
			f := cmd.Flags()
			if anyChanged(f, "camera-x", "camera-y", "camera-z", "target-x", "target-y", "target-z") {
				rt = rt.WithCamera(mgl32.Vec3{camX, camY, camZ}, mgl32.Vec3{tgtX, tgtY, tgtZ})
			}
			if f.Changed("fov") {
				rt = rt.WithVerticalFOV(fov)
			}
			if anyChanged(f, "z-near", "z-far") {
				rt = rt.WithClipping(zNear, zFar)
			}
			if anyChanged(f, "width", "height") {
				rt = rt.WithResolution(width, height)
			}
			if f.Changed("samples") {
				rt = rt.WithSampleCount(samples)
			}
			if f.Changed("depth") {
				rt = rt.WithRecursionDepth(depth)
			}
			if f.Changed("seed") {
				rt = rt.WithSeed(seed)
			}

			slog.Info("rendering", "directory", directory, "obj_file", objFile, "output", output)
			return rt.RenderSave(output)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "optional YAML config file populating the flags below")
	flags.StringVar(&directory, "directory", "", "directory containing the OBJ/MTL scene (required)")
	flags.StringVar(&objFile, "obj", "", "OBJ filename within directory (required)")
	flags.StringVarP(&output, "output", "o", "out.png", "PNG output path")
	flags.IntVar(&width, "width", 800, "image width in pixels")
	flags.IntVar(&height, "height", 600, "image height in pixels")
	flags.IntVar(&samples, "samples", 1, "samples per pixel")
	flags.IntVar(&depth, "depth", 1, "recursion depth (bounces past the primary hit)")
	flags.Float32Var(&fov, "fov", 39.6, "vertical field of view in degrees")
	flags.Float32Var(&zNear, "z-near", 0.1, "near clipping plane")
	flags.Float32Var(&zFar, "z-far", 1000.0, "far clipping plane")
	flags.Float32Var(&camX, "camera-x", 0, "camera position x")
	flags.Float32Var(&camY, "camera-y", 0, "camera position y")
	flags.Float32Var(&camZ, "camera-z", 0, "camera position z")
	flags.Float32Var(&tgtX, "target-x", 0, "camera target x")
	flags.Float32Var(&tgtY, "target-y", 0, "camera target y")
	flags.Float32Var(&tgtZ, "target-z", 0, "camera target z")
	flags.Uint32Var(&seed, "seed", 1, "RNG global seed")

	return cmd
}

func anyChanged(f *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if f.Changed(name) {
			return true
		}
	}
	return false
}
