// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerizeRounding(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int32
	}{
		{"zero", 0, 0},
		{"one", 1, 256},
		{"half unit up", 0.5 / 256, 1},
		{"half unit down", -0.5 / 256, -1},
		{"below half", 0.49 / 256, 0},
		{"negative", -1.25, -320},
		{"saturate high", 1e12, math.MaxInt32},
		{"saturate low", -1e12, math.MinInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Integerize([]float64{tt.in, -tt.in}, Translation)
			assert.Equal(t, tt.want, m.Mat[0])
			if tt.want != math.MinInt32 && tt.want != math.MaxInt32 {
				assert.Equal(t, -tt.want, m.Mat[1])
			}
		})
	}
}

func TestIntegerizeContainment(t *testing.T) {
	// Entries past the type's parameter count are poisoned with NaN, which
	// panics if read.
	full := []float64{1.5, -2.25, 1.01, 0.02, -0.03, 0.98, 0.0005, -0.00025}
	for _, typ := range []TransformationType{Translation, RotZoom, Affine, Homography} {
		t.Run(typ.String(), func(t *testing.T) {
			n := typ.NumParams()
			in := make([]float64, len(full))
			copy(in, full[:n])
			for i := n; i < len(in); i++ {
				in[i] = math.NaN()
			}
			var m Model
			require.NotPanics(t, func() { m = Integerize(in, typ) })
			assert.Equal(t, typ, m.Type)
			for i := n; i < len(m.Mat); i++ {
				assert.Zero(t, m.Mat[i], "Mat[%d]", i)
			}
			// A slice of exactly n entries is enough.
			assert.Equal(t, m, Integerize(full[:n], typ))
		})
	}
}

func TestIntegerizeHomographyPrecision(t *testing.T) {
	m := Integerize([]float64{1, 0, 0, 0, 1, 0, 1.0 / 4096, -3.0 / 4096}, Homography)
	assert.Equal(t, [8]int32{256, 0, 0, 0, 256, 0, 1, -3}, m.Mat)
}

func TestIntegerizeRoundTrip(t *testing.T) {
	full := []float64{-7.3, 12.9, 0.93, -0.12, 0.2, 1.07, 0.0013, -0.0007}
	for _, typ := range []TransformationType{Translation, RotZoom, Affine, Homography} {
		m := Integerize(full, typ)
		again := Integerize(m.Params(), typ)
		assert.Equal(t, m, again, "%v", typ)
		assert.Len(t, m.Params(), typ.NumParams())
	}
}

func TestIntegerizePanics(t *testing.T) {
	assert.Panics(t, func() { Integerize([]float64{1, 2}, UnknownTransform) })
	assert.Panics(t, func() { Integerize([]float64{1, 2}, TransformationType(7)) })
	assert.Panics(t, func() { Integerize([]float64{1, 2, 3}, RotZoom) })
	assert.Panics(t, func() { Integerize([]float64{math.NaN(), 0}, Translation) })
}
