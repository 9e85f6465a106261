// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mtl parses a Wavefront MTL file into zero or more MaterialData
// blocks, one per newmtl declaration, in file order. Recognized
// keywords are Ka (ambient), Kd (diffuse), Ks (specular), Ke
// (emissive), Ns (specular highlight exponent), Ni (index of
// refraction), and d (transparency); illum is parsed but discarded —
// this renderer has no illumination-model switch.
//
// The Reader r is expected to be opened and closed by the caller. path
// is carried only for error messages.
func Mtl(r io.Reader, path string) ([]MaterialData, error) {
	var materials []MaterialData
	var current *MaterialData

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			if perr := mtlLine(&materials, &current, trimmed); perr != nil {
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
	return materials, nil
}

func mtlLine(materials *[]MaterialData, current **MaterialData, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	switch tokens[0] {
	case "newmtl":
		name := strings.TrimSpace(strings.TrimPrefix(line, "newmtl"))
		*materials = append(*materials, MaterialData{Name: name, IndexOfRefraction: 1.0})
		*current = &(*materials)[len(*materials)-1]
	case "Ka":
		return scanColor(line, "Ka", current, func(m *MaterialData, c Vec3) { m.Ambient = c })
	case "Kd":
		return scanColor(line, "Kd", current, func(m *MaterialData, c Vec3) { m.Diffuse = c })
	case "Ks":
		return scanColor(line, "Ks", current, func(m *MaterialData, c Vec3) { m.Specular = c })
	case "Ke":
		return scanColor(line, "Ke", current, func(m *MaterialData, c Vec3) { m.Emissive = c })
	case "Ns":
		return scanScalar(tokens, current, func(m *MaterialData, v float32) { m.SpecularHighlight = v })
	case "Ni":
		return scanScalar(tokens, current, func(m *MaterialData, v float32) { m.IndexOfRefraction = v })
	case "d":
		return scanScalar(tokens, current, func(m *MaterialData, v float32) { m.Transparency = v })
	case "illum":
		// illumination model id: discarded.
	}
	return nil
}

func scanColor(line, keyword string, current **MaterialData, set func(*MaterialData, Vec3)) error {
	if *current == nil {
		return fmt.Errorf("%s outside of a newmtl block", keyword)
	}
	var x, y, z float32
	if _, err := fmt.Sscanf(line, keyword+" %f %f %f", &x, &y, &z); err != nil {
		return fmt.Errorf("bad %s values: %w", keyword, err)
	}
	set(*current, Vec3{x, y, z})
	return nil
}

func scanScalar(tokens []string, current **MaterialData, set func(*MaterialData, float32)) error {
	if *current == nil {
		return fmt.Errorf("%s outside of a newmtl block", tokens[0])
	}
	if len(tokens) < 2 {
		return fmt.Errorf("%s missing value", tokens[0])
	}
	v, err := strconv.ParseFloat(tokens[1], 32)
	if err != nil {
		return fmt.Errorf("bad %s value: %w", tokens[0], err)
	}
	set(*current, float32(v))
	return nil
}
