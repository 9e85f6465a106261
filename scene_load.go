// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"path/filepath"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/brightforge/rtrace/load"
)

// loadScene reads objFile (and the .mtl file it references via
// mtllib) from directory and assembles a Scene: one shared
// TriangleMesh holding every position/normal/material, and one Object
// per `o` declaration, in file order, per §6.1.
func loadScene(directory, objFile string) (Scene, error) {
	locator := load.NewLocator()
	defer locator.Close()

	objReader, err := locator.Open(directory, objFile)
	if err != nil {
		return Scene{}, &IoError{Path: filepath.Join(directory, objFile), Err: err}
	}
	defer objReader.Close()

	meshData, err := load.Obj(objReader, objFile)
	if err != nil {
		return Scene{}, convertLoadError(err)
	}

	var materials []load.MaterialData
	materialIndex := map[string]int{}
	if meshData.Mtllib != "" {
		mtlReader, err := locator.Open(directory, meshData.Mtllib)
		if err != nil {
			return Scene{}, &IoError{Path: filepath.Join(directory, meshData.Mtllib), Err: err}
		}
		defer mtlReader.Close()

		materials, err = load.Mtl(mtlReader, meshData.Mtllib)
		if err != nil {
			return Scene{}, convertLoadError(err)
		}
		for i, m := range materials {
			materialIndex[m.Name] = i
		}
	}
	if len(materials) == 0 {
		materials = []load.MaterialData{{Name: "", IndexOfRefraction: 1.0}}
		materialIndex[""] = 0
	}

	positions := make([]mgl32.Vec3, len(meshData.Positions))
	for i, p := range meshData.Positions {
		positions[i] = mgl32.Vec3{p.X, p.Y, p.Z}
	}
	normals := make([]mgl32.Vec3, len(meshData.Normals))
	for i, n := range meshData.Normals {
		normals[i] = mgl32.Vec3{n.X, n.Y, n.Z}
	}
	sceneMaterials := make([]Material, len(materials))
	for i, m := range materials {
		sceneMaterials[i] = Material{
			Ambient:           mgl32.Vec3{m.Ambient.X, m.Ambient.Y, m.Ambient.Z},
			Diffuse:           mgl32.Vec3{m.Diffuse.X, m.Diffuse.Y, m.Diffuse.Z},
			Specular:          mgl32.Vec3{m.Specular.X, m.Specular.Y, m.Specular.Z},
			Emissive:          mgl32.Vec3{m.Emissive.X, m.Emissive.Y, m.Emissive.Z},
			SpecularHighlight: m.SpecularHighlight,
			Transparency:      m.Transparency,
			IndexOfRefraction: m.IndexOfRefraction,
		}
	}

	mesh := NewTriangleMesh(positions, normals, sceneMaterials)
	objects := make([]Object, 0, len(meshData.Objects))
	for _, od := range meshData.Objects {
		triangles := make([]TriangleIndex, 0, len(od.Triangles))
		for _, td := range od.Triangles {
			matIdx, ok := materialIndex[td.Material]
			if !ok {
				if td.Material == "" {
					matIdx = 0 // no usemtl seen yet: fall back to the first material.
				} else {
					return Scene{}, &ReferenceError{Kind: "material", Name: td.Material}
				}
			}
			for _, v := range [3]int{td.V0, td.V1, td.V2} {
				if v < 0 || v >= len(positions) {
					return Scene{}, &ReferenceError{Kind: "vertex", Name: strconv.Itoa(v + 1)}
				}
			}
			if td.Normal < 0 || td.Normal >= len(normals) {
				return Scene{}, &ReferenceError{Kind: "normal", Name: strconv.Itoa(td.Normal + 1)}
			}
			triangles = append(triangles, TriangleIndex{
				V0: td.V0, V1: td.V1, V2: td.V2,
				Normal:   td.Normal,
				Material: matIdx,
			})
		}
		start := mesh.AppendTriangles(triangles)
		objects = append(objects, NewObject(od.Name, start, len(triangles), mesh))
	}

	return NewScene(mesh, objects), nil
}

// convertLoadError translates the load package's own error taxonomy
// (which cannot import this package — it would create an import
// cycle) into rtrace's public error types.
func convertLoadError(err error) error {
	switch e := err.(type) {
	case *load.ParseError:
		return &ParseError{Path: e.Path, Line: e.Line, Text: e.Text, Err: e.Err}
	case *load.IoErr:
		return &IoError{Path: e.Path, Err: e.Err}
	case *load.ReferenceError:
		return &ReferenceError{Kind: e.Kind, Name: e.Name}
	default:
		return err
	}
}
