// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package load parses the Wavefront OBJ/MTL scene files this renderer
// reads: positions, normals, triangles, and materials, with object
// boundaries and usemtl/newmtl references preserved in declaration
// order. It keeps gazed-vu's original load package's line-scanning
// idiom (bufio.Reader.ReadString('\n') plus fmt.Sscanf) rather than a
// parser-combinator library, since that idiom already reads OBJ/MTL
// text comfortably.
package load

// Vec3 is a plain 3-float tuple; it exists so this package has no
// dependency on a math library, keeping it a narrow, reusable text
// parser.
type Vec3 struct {
	X, Y, Z float32
}

// MaterialData is one newmtl block: Ka/Kd/Ks/Ke colors plus the Ns
// (specular highlight), d (transparency) and Ni (index of refraction)
// scalars. illum is parsed but discarded — this renderer has no
// illumination-model switch.
type MaterialData struct {
	Name                                   string
	Ambient, Diffuse, Specular, Emissive   Vec3
	SpecularHighlight, Transparency        float32
	IndexOfRefraction                      float32
}

// TriangleData is one face, already fan-triangulated if needed, with
// zero-based indices into the owning MeshData's Positions/Normals and
// the material name active (via usemtl) when the face was read.
type TriangleData struct {
	V0, V1, V2 int
	Normal     int
	Material   string
}

// ObjectData is one `o`-declared object: its name and the contiguous
// run of triangles belonging to it, in file order. usemtl lines
// inside an object do not start a new object — they only change which
// material subsequent triangles reference.
type ObjectData struct {
	Name      string
	Triangles []TriangleData
}

// MeshData is everything Obj extracts from one .obj file: the global
// position/normal pools (referenced by absolute, zero-based index)
// and the objects declared over them, in declaration order.
type MeshData struct {
	Positions []Vec3
	Normals   []Vec3
	Objects   []ObjectData

	// Mtllib is the filename named by the first mtllib directive, or
	// empty if the file has none. Obj does not load it itself — the
	// caller resolves it relative to whatever directory it read the
	// .obj from.
	Mtllib string
}
