// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package warped implements warped (non-translational) motion compensation:
// projecting pixel coordinates through a fixed-point geometric model,
// synthesizing a predicted block from a reference plane with a 6-tap
// sub-pixel filter, and scoring how well a model predicts a target block.
//
// Every function is pure over caller-owned buffers and may run concurrently
// with any other call, provided the destination buffers do not overlap.
package warped

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Fixed-point precision of models, sub-pixel phases and filter taps.
const (
	ModelPrecBits         = 8  // fractional bits of model coefficients
	ModelRow3HomoPrecBits = 12 // fractional bits of the homography projective row

	PixelPrecBits   = 6 // fractional bits of a projected coordinate
	PixelPrecShifts = 1 << PixelPrecBits

	FilterTaps = 6
	FilterBits = 7 // fractional bits of filter taps

	DiffPrecBits = ModelPrecBits - PixelPrecBits
)

// TransformationType selects the geometric model carried by a Model.
type TransformationType int8

const (
	UnknownTransform TransformationType = iota - 1
	Homography                          // 8 parameters, projective
	Affine                              // 6 parameters
	RotZoom                             // 4 parameters, rotation and uniform zoom
	Translation                         // 2 parameters, shift only

	numTransTypes = iota - 1
)

// modelParams is the number of meaningful Mat entries per type.
// The homography's ninth coefficient is the implicit unit normalizer.
var modelParams = [numTransTypes]int{
	Homography:  8,
	Affine:      6,
	RotZoom:     4,
	Translation: 2,
}

var typeNames = [numTransTypes]string{
	Homography:  "homography",
	Affine:      "affine",
	RotZoom:     "rotzoom",
	Translation: "translation",
}

// Valid reports whether t is one of the four known transformation types.
func (t TransformationType) Valid() bool {
	return t >= 0 && t < numTransTypes
}

// NumParams returns how many Mat entries are meaningful for t.
// It panics if t is not a valid type.
func (t TransformationType) NumParams() int {
	mustValid(t)
	return modelParams[t]
}

func (t TransformationType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TransformationType(%d)", int8(t))
	}
	return typeNames[t]
}

// ParseTransformationType parses a type name as printed by String.
func ParseTransformationType(s string) (TransformationType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return TransformationType(t), nil
		}
	}
	return UnknownTransform, errors.Errorf("warped: unknown transformation type %q", s)
}

func mustValid(t TransformationType) {
	if !t.Valid() {
		panic(fmt.Sprintf("warped: invalid transformation type %v", t))
	}
}

// Model is a fixed-point warped motion model. Only the first Type.NumParams()
// entries of Mat are meaningful; the rest are never read.
//
// Coefficient layout:
//
//	Translation: Mat[0]=dx Mat[1]=dy
//	RotZoom:     Mat[0]=dx Mat[1]=dy, linear part [[Mat[2] Mat[3]] [-Mat[3] Mat[2]]]
//	Affine:      Mat[0]=dx Mat[1]=dy, linear part [[Mat[2] Mat[3]] [Mat[4] Mat[5]]]
//	Homography:  row-major 3x3 without the last entry, Mat[6] and Mat[7] at
//	             ModelRow3HomoPrecBits, everything else at ModelPrecBits
type Model struct {
	Type TransformationType
	Mat  [8]int32
}

// Identity returns the zero-shift translation model.
func Identity() Model {
	return Model{Type: Translation}
}

// Matrix returns the model as a dequantized 3x3 matrix mapping homogeneous
// (x, y, 1) luma pixel coordinates of the current frame to the reference.
func (m *Model) Matrix() *mat.Dense {
	mustValid(m.Type)
	const one = 1 << ModelPrecBits
	const oneHomo = 1 << ModelRow3HomoPrecBits
	c := func(i int) float64 { return float64(m.Mat[i]) / one }

	var d []float64
	switch m.Type {
	case Translation:
		d = []float64{
			1, 0, c(0),
			0, 1, c(1),
			0, 0, 1,
		}
	case RotZoom:
		d = []float64{
			c(2), c(3), c(0),
			-c(3), c(2), c(1),
			0, 0, 1,
		}
	case Affine:
		d = []float64{
			c(2), c(3), c(0),
			c(4), c(5), c(1),
			0, 0, 1,
		}
	case Homography:
		d = []float64{
			c(0), c(1), c(2),
			c(3), c(4), c(5),
			float64(m.Mat[6]) / oneHomo, float64(m.Mat[7]) / oneHomo, 1,
		}
	}
	return mat.NewDense(3, 3, d)
}
