// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rng

import "testing"

func TestSameInputsProduceSameStream(t *testing.T) {
	a := New(3, 4, 0, 99)
	b := New(3, 4, 0, 99)
	for i := 0; i < 10; i++ {
		av, bv := a.Float32(), b.Float32()
		if av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
	}
}

func TestDifferentPixelsDiverge(t *testing.T) {
	a := New(0, 0, 0, 1)
	b := New(1, 0, 0, 1)
	if a.Float32() == b.Float32() {
		t.Error("different pixel coordinates should not produce identical first draws")
	}
}

func TestFloat32StaysInUnitRange(t *testing.T) {
	src := New(7, 8, 2, 123)
	for i := 0; i < 1000; i++ {
		v := src.Float32()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}
