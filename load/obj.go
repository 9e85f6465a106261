// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Obj parses a Wavefront OBJ file into a MeshData: the `v`/`vn` pools,
// and one ObjectData per `o` declaration with usemtl flattened into
// each triangle. A face needs at least three vertices; a face with
// more than three is fan-triangulated around its first vertex,
// matching the common exporter convention.
//
// The Reader r is expected to be opened and closed by the caller. path
// is carried only for error messages.
func Obj(r io.Reader, path string) (*MeshData, error) {
	data := &MeshData{}
	var objs []*ObjectData
	currentMaterial := ""

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			if perr := objLine(data, &objs, &currentMaterial, trimmed); perr != nil {
				return nil, &ParseError{Path: path, Line: lineNo, Text: trimmed, Err: perr}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IoErr{Path: path, Err: err}
		}
	}

	data.Objects = make([]ObjectData, len(objs))
	for i, o := range objs {
		data.Objects[i] = *o
	}
	if len(data.Positions) == 0 {
		return nil, &ParseError{Path: path, Text: "no vertex data"}
	}
	return data, nil
}

func objLine(data *MeshData, objs *[]*ObjectData, currentMaterial *string, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	switch tokens[0] {
	case "v":
		var x, y, z float32
		if _, err := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); err != nil {
			return fmt.Errorf("bad vertex: %w", err)
		}
		data.Positions = append(data.Positions, Vec3{x, y, z})
	case "vn":
		var x, y, z float32
		if _, err := fmt.Sscanf(line, "vn %f %f %f", &x, &y, &z); err != nil {
			return fmt.Errorf("bad normal: %w", err)
		}
		data.Normals = append(data.Normals, Vec3{x, y, z})
	case "vt":
		// texture coordinates are outside this renderer's material
		// model (materials are flat colors) and are ignored.
	case "o":
		name := strings.TrimSpace(strings.TrimPrefix(line, "o"))
		*objs = append(*objs, &ObjectData{Name: name})
	case "usemtl":
		*currentMaterial = strings.TrimSpace(strings.TrimPrefix(line, "usemtl"))
	case "mtllib":
		if data.Mtllib == "" {
			data.Mtllib = strings.TrimSpace(strings.TrimPrefix(line, "mtllib"))
		}
	case "s":
		// smoothing groups do not affect this renderer's flat,
		// per-face normal model.
	case "f":
		if len(*objs) == 0 {
			*objs = append(*objs, &ObjectData{Name: ""})
		}
		faces, err := parseFace(tokens[1:])
		if err != nil {
			return err
		}
		for i := range faces {
			faces[i].Material = *currentMaterial
		}
		obj := (*objs)[len(*objs)-1]
		obj.Triangles = append(obj.Triangles, faces...)
	}
	return nil
}

// parseFace triangulates a face line's vertex tokens (already split,
// excluding the leading "f") into one or more TriangleData via a
// triangle fan around the first vertex.
func parseFace(tokens []string) ([]TriangleData, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(tokens))
	}
	corners := make([]struct{ v, n int }, len(tokens))
	for i, tok := range tokens {
		v, n, err := parseFaceIndex(tok)
		if err != nil {
			return nil, err
		}
		corners[i] = struct{ v, n int }{v, n}
	}
	tris := make([]TriangleData, 0, len(tokens)-2)
	for i := 1; i+1 < len(corners); i++ {
		tris = append(tris, TriangleData{
			V0: corners[0].v, V1: corners[i].v, V2: corners[i+1].v,
			Normal: corners[0].n,
		})
	}
	return tris, nil
}

// parseFaceIndex handles the `v//vn` and `v/vt/vn` face-vertex syntax,
// converting OBJ's 1-based indices to zero-based.
func parseFaceIndex(token string) (v, n int, err error) {
	var t int
	if _, err = fmt.Sscanf(token, "%d//%d", &v, &n); err == nil {
		return v - 1, n - 1, nil
	}
	if _, err = fmt.Sscanf(token, "%d/%d/%d", &v, &t, &n); err == nil {
		return v - 1, n - 1, nil
	}
	return 0, 0, fmt.Errorf("bad face index %q", token)
}
