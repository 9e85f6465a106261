// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package rng is a small deterministic pseudo-random source for the
// renderer's stochastic sampling. The reference implementation uses a
// thread-shared non-deterministic generator (one seed drawn per
// worker via rand.Uint32, then advanced with a xorshift-style step —
// see gazed-vu/eg/rt.go's rnd); this package keeps that same fast
// xorshift step but seeds it deterministically from (x, y,
// sample_index, global_seed) so a render is reproducible and testable
// without changing the observable distribution.
package rng

// Source is a per-pixel, per-sample random source. Zero value is not
// usable; construct with New.
type Source struct {
	state uint32
}

// New derives a seed from the pixel coordinate, the sample index
// within that pixel, and a caller-supplied global seed, then builds a
// Source from it. Same inputs always produce the same stream.
func New(x, y, sampleIndex int, globalSeed uint32) *Source {
	h := globalSeed
	h = mix(h, uint32(x))
	h = mix(h, uint32(y))
	h = mix(h, uint32(sampleIndex))
	if h == 0 {
		h = 0x9e3779b9 // xorshift cannot advance from a zero state.
	}
	return &Source{state: h}
}

// mix is a small integer hash (Murmur3-style finalizer) used only to
// spread the four seed components into a non-degenerate starting
// state; it is not itself the random stream.
func mix(h, v uint32) uint32 {
	h ^= v
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Float32 returns the next pseudo-random value in [0, 1), advancing
// the source's internal xorshift state.
func (s *Source) Float32() float32 {
	s.state ^= s.state << 13
	s.state ^= s.state >> 17
	s.state ^= s.state << 5
	// Keep the top 24 bits so the result is exact in float32 and never
	// rounds up to 1.0.
	return float32(s.state>>8) / float32(1<<24)
}
