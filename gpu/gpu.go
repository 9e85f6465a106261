// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build gpu

// Package gpu is an optional compute-mirror backend: it uploads the
// same scene data the CPU core renders (positions, normals,
// materials, triangle indices, object bounds, camera, render
// parameters) onto GPU storage buffers, grounded on
// original_source/src/data_structures.rs's GPUData layout and on
// Gekko3D-gekko/voxelrt/rt/gpu's wgpu buffer-manager idiom.
//
// Per spec §1 this backend is explicitly optional; the CPU core in
// the parent rtrace package is authoritative and self-sufficient. This
// package does not implement the compute shaders themselves — only
// the data-model mirror a future compute pipeline would consume.
package gpu

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vec3 mirrors rtrace's vector type without importing the rendering
// package, keeping this backend a standalone, independently buildable
// mirror of the data model.
type Vec3 = [3]float32

// TriangleRecord is the GPU-buffer-friendly encoding of rtrace's
// TriangleIndex: five uint32 fields, 20 bytes, matching
// data_structures.rs's packed triangle layout.
type TriangleRecord struct {
	V0, V1, V2 uint32
	Normal     uint32
	Material   uint32
}

// MaterialRecord is the GPU-buffer-friendly encoding of rtrace's
// Material: four Vec3 colors plus three scalars, std140-padded to
// 16-byte boundaries per color.
type MaterialRecord struct {
	Ambient, Diffuse, Specular, Emissive Vec3
	SpecularHighlight, Transparency, IndexOfRefraction float32
}

// ObjectRecord mirrors rtrace's Object: a triangle range plus its
// AABB, uploaded once per scene.
type ObjectRecord struct {
	TriangleStart, TriangleCount uint32
	Min, Max                     Vec3
}

// SceneData is the host-side mirror of everything the CPU core's
// Scene/TriangleMesh hold; Mirror uploads it verbatim onto GPU
// buffers.
type SceneData struct {
	Positions []Vec3
	Normals   []Vec3
	Materials []MaterialRecord
	Triangles []TriangleRecord
	Objects   []ObjectRecord
}

// Mirror owns the GPU-side buffers backing one SceneData upload. It
// is the compute-mirror analogue of rtrace.Scene: built once,
// immutable for the duration of a render.
type Mirror struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	PositionsBuf *wgpu.Buffer
	NormalsBuf   *wgpu.Buffer
	MaterialsBuf *wgpu.Buffer
	TrianglesBuf *wgpu.Buffer
	ObjectsBuf   *wgpu.Buffer
}

// NewMirror acquires a default GPU adapter/device and uploads data
// onto freshly created storage buffers. The returned Mirror must be
// released with Release once no longer needed.
func NewMirror(ctx context.Context, data SceneData) (*Mirror, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: request adapter: %w", err)
	}
	defer adapter.Release()

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("gpu: request device: %w", err)
	}

	m := &Mirror{device: device, queue: device.GetQueue()}
	uploads := []struct {
		dst   **wgpu.Buffer
		label string
		bytes []byte
	}{
		{&m.PositionsBuf, "positions", encodeVec3s(data.Positions)},
		{&m.NormalsBuf, "normals", encodeVec3s(data.Normals)},
		{&m.MaterialsBuf, "materials", encodeMaterials(data.Materials)},
		{&m.TrianglesBuf, "triangles", encodeTriangles(data.Triangles)},
		{&m.ObjectsBuf, "objects", encodeObjects(data.Objects)},
	}
	for _, u := range uploads {
		buf, err := m.upload(u.label, u.bytes)
		if err != nil {
			m.Release()
			return nil, err
		}
		*u.dst = buf
	}
	return m, nil
}

// Release frees every GPU buffer and the device this mirror owns.
func (m *Mirror) Release() {
	for _, b := range []*wgpu.Buffer{m.PositionsBuf, m.NormalsBuf, m.MaterialsBuf, m.TrianglesBuf, m.ObjectsBuf} {
		if b != nil {
			b.Release()
		}
	}
	if m.device != nil {
		m.device.Release()
	}
}

func (m *Mirror) upload(label string, bytes []byte) (*wgpu.Buffer, error) {
	if len(bytes) == 0 {
		bytes = make([]byte, 4) // zero-sized storage buffers are invalid on some backends.
	}
	buf, err := m.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             uint64(len(bytes)),
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create buffer %s: %w", label, err)
	}
	m.queue.WriteBuffer(buf, 0, bytes)
	return buf, nil
}

func encodeVec3s(vs []Vec3) []byte {
	buf := make([]byte, 0, len(vs)*12)
	for _, v := range vs {
		buf = appendFloat32(buf, v[0])
		buf = appendFloat32(buf, v[1])
		buf = appendFloat32(buf, v[2])
	}
	return buf
}

func encodeTriangles(ts []TriangleRecord) []byte {
	buf := make([]byte, 0, len(ts)*20)
	for _, t := range ts {
		buf = appendUint32(buf, t.V0)
		buf = appendUint32(buf, t.V1)
		buf = appendUint32(buf, t.V2)
		buf = appendUint32(buf, t.Normal)
		buf = appendUint32(buf, t.Material)
	}
	return buf
}

func encodeMaterials(ms []MaterialRecord) []byte {
	buf := make([]byte, 0, len(ms)*64)
	for _, m := range ms {
		buf = appendFloat32s(buf, m.Ambient[:])
		buf = appendFloat32(buf, 0) // std140 vec3 padding.
		buf = appendFloat32s(buf, m.Diffuse[:])
		buf = appendFloat32(buf, 0)
		buf = appendFloat32s(buf, m.Specular[:])
		buf = appendFloat32(buf, 0)
		buf = appendFloat32s(buf, m.Emissive[:])
		buf = appendFloat32(buf, 0)
		buf = appendFloat32(buf, m.SpecularHighlight)
		buf = appendFloat32(buf, m.Transparency)
		buf = appendFloat32(buf, m.IndexOfRefraction)
		buf = appendFloat32(buf, 0)
	}
	return buf
}

func encodeObjects(os []ObjectRecord) []byte {
	buf := make([]byte, 0, len(os)*32)
	for _, o := range os {
		buf = appendUint32(buf, o.TriangleStart)
		buf = appendUint32(buf, o.TriangleCount)
		buf = appendFloat32s(buf, o.Min[:])
		buf = appendFloat32s(buf, o.Max[:])
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
	return append(buf, b[:]...)
}

func appendFloat32s(buf []byte, fs []float32) []byte {
	for _, f := range fs {
		buf = appendFloat32(buf, f)
	}
	return buf
}

func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}
