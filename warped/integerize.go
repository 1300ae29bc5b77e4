// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import (
	"fmt"
	"math"
)

// Integerize converts a floating-point model, laid out as Model.Mat, into a
// fixed-point Model of type t. Only the first t.NumParams() entries of model
// are read. Coefficients are rounded to nearest with ties away from zero and
// saturated to the int32 range; the unused Mat entries are zero.
//
// It panics if t is invalid, model is too short or a coefficient is NaN.
func Integerize(model []float64, t TransformationType) Model {
	n := t.NumParams()
	if len(model) < n {
		panic(fmt.Sprintf("warped: %v model needs %d coefficients, got %d", t, n, len(model)))
	}

	wm := Model{Type: t}
	switch t {
	case Homography:
		wm.Mat[7] = quantize(model[7], ModelRow3HomoPrecBits)
		wm.Mat[6] = quantize(model[6], ModelRow3HomoPrecBits)
		fallthrough
	case Affine:
		wm.Mat[5] = quantize(model[5], ModelPrecBits)
		wm.Mat[4] = quantize(model[4], ModelPrecBits)
		fallthrough
	case RotZoom:
		wm.Mat[3] = quantize(model[3], ModelPrecBits)
		wm.Mat[2] = quantize(model[2], ModelPrecBits)
		fallthrough
	case Translation:
		wm.Mat[1] = quantize(model[1], ModelPrecBits)
		wm.Mat[0] = quantize(model[0], ModelPrecBits)
	}
	return wm
}

func quantize(v float64, bits int) int32 {
	if math.IsNaN(v) {
		panic("warped: NaN model coefficient")
	}
	r := math.Round(math.Ldexp(v, bits))
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	if r < math.MinInt32 {
		return math.MinInt32
	}
	return int32(r)
}

// Params returns the dequantized coefficients of m in the layout Integerize
// expects, so that Integerize(m.Params(), m.Type) == m.
func (m *Model) Params() []float64 {
	n := m.Type.NumParams()
	p := make([]float64, n)
	for i := range p {
		bits := ModelPrecBits
		if m.Type == Homography && i >= 6 {
			bits = ModelRow3HomoPrecBits
		}
		p[i] = math.Ldexp(float64(m.Mat[i]), -bits)
	}
	return p
}
