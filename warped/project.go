// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import (
	"fmt"
	"math"
)

// minHomographyDenom is the smallest magnitude of the projective denominator,
// 1/256 of the unit denominator 1<<(ModelRow3HomoPrecBits+1).
const minHomographyDenom = 1 << (ModelRow3HomoPrecBits + 1 - 8)

// roundPowerOfTwoSigned divides v by 2^n, rounding half away from zero.
func roundPowerOfTwoSigned(v int64, n uint) int64 {
	if v < 0 {
		return -((-v + (1 << n >> 1)) >> n)
	}
	return (v + (1 << n >> 1)) >> n
}

func saturate32(v int64) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

// Project maps n points through the model. Point i is read from
// points[i*pointsStride:] as (x, y) in integer pixels of the plane being
// predicted and written to proj[i*projStride:] in 1/PixelPrecShifts pel units
// of the reference plane.
//
// subX and subY are the plane's chroma subsampling shifts (0 or 1). The model
// is always expressed in luma coordinates; the conversion happens here and
// callers must not adjust the points themselves.
func (m *Model) Project(points, proj []int, n, pointsStride, projStride, subX, subY int) {
	mustValid(m.Type)
	mustSubsampling(subX, subY)
	if n <= 0 {
		return
	}
	if pointsStride < 2 || projStride < 2 ||
		len(points) < (n-1)*pointsStride+2 || len(proj) < (n-1)*projStride+2 {
		panic(fmt.Sprintf("warped: %d points do not fit strides %d/%d", n, pointsStride, projStride))
	}
	for i := 0; i < n; i++ {
		in := points[i*pointsStride:]
		out := proj[i*projStride:]
		out[0], out[1] = m.project(in[0], in[1], subX, subY)
	}
}

// ProjectPoint maps a single point, as Project does.
func (m *Model) ProjectPoint(x, y, subX, subY int) (int, int) {
	mustValid(m.Type)
	mustSubsampling(subX, subY)
	return m.project(x, y, subX, subY)
}

// project dispatches on the model type. Arguments are assumed valid.
func (m *Model) project(x, y, subX, subY int) (int, int) {
	switch m.Type {
	case Translation:
		return projectTranslation(&m.Mat, int64(x), int64(y), subX, subY)
	case RotZoom:
		return projectRotZoom(&m.Mat, int64(x), int64(y), subX, subY)
	case Affine:
		return projectAffine(&m.Mat, int64(x), int64(y), subX, subY)
	case Homography:
		return projectHomography(&m.Mat, int64(x), int64(y), subX, subY)
	}
	panic(fmt.Sprintf("warped: invalid transformation type %v", m.Type))
}

func projectTranslation(mat *[8]int32, x, y int64, subX, subY int) (int, int) {
	var px, py int64
	if subX != 0 {
		px = roundPowerOfTwoSigned(x<<(ModelPrecBits+1)+int64(mat[0]), DiffPrecBits+1)
	} else {
		px = roundPowerOfTwoSigned(x<<ModelPrecBits+int64(mat[0]), DiffPrecBits)
	}
	if subY != 0 {
		py = roundPowerOfTwoSigned(y<<(ModelPrecBits+1)+int64(mat[1]), DiffPrecBits+1)
	} else {
		py = roundPowerOfTwoSigned(y<<ModelPrecBits+int64(mat[1]), DiffPrecBits)
	}
	return saturate32(px), saturate32(py)
}

// linear applies one row (a, b, shift) of a 2x3 model to (x, y). On a
// subsampled axis the chroma sample x sits at luma position 2x+0.5, which is
// folded into the shift before rounding back to chroma units.
func linear(a, b, shift, x, y int64, sub int) int64 {
	if sub != 0 {
		return roundPowerOfTwoSigned(a*2*x+b*2*y+shift+(a+b-(1<<ModelPrecBits))/2, DiffPrecBits+1)
	}
	return roundPowerOfTwoSigned(a*x+b*y+shift, DiffPrecBits)
}

func projectRotZoom(mat *[8]int32, x, y int64, subX, subY int) (int, int) {
	a, b := int64(mat[2]), int64(mat[3])
	px := linear(a, b, int64(mat[0]), x, y, subX)
	py := linear(-b, a, int64(mat[1]), x, y, subY)
	return saturate32(px), saturate32(py)
}

func projectAffine(mat *[8]int32, x, y int64, subX, subY int) (int, int) {
	px := linear(int64(mat[2]), int64(mat[3]), int64(mat[0]), x, y, subX)
	py := linear(int64(mat[4]), int64(mat[5]), int64(mat[1]), x, y, subY)
	return saturate32(px), saturate32(py)
}

func projectHomography(mat *[8]int32, x, y int64, subX, subY int) (int, int) {
	// Work at twice the resolution so the chroma offset of half a luma
	// pixel stays integral.
	if subX != 0 {
		x = 4*x + 1
	} else {
		x = 2 * x
	}
	if subY != 0 {
		y = 4*y + 1
	} else {
		y = 2 * y
	}

	z := int64(mat[6])*x + int64(mat[7])*y + 1<<(ModelRow3HomoPrecBits+1)
	switch {
	case z >= 0 && z < minHomographyDenom:
		z = minHomographyDenom
	case z < 0 && z > -minHomographyDenom:
		z = -minHomographyDenom
	}

	const up = PixelPrecBits + ModelRow3HomoPrecBits - ModelPrecBits
	xp := (int64(mat[0])*x + int64(mat[1])*y + 2*int64(mat[2])) << up
	yp := (int64(mat[3])*x + int64(mat[4])*y + 2*int64(mat[5])) << up
	xp = divRound(xp, z)
	yp = divRound(yp, z)

	if subX != 0 {
		xp = (xp - 1<<(PixelPrecBits-1)) / 2
	}
	if subY != 0 {
		yp = (yp - 1<<(PixelPrecBits-1)) / 2
	}
	return saturate32(xp), saturate32(yp)
}

// divRound divides num by den, rounding half away from zero for either sign
// of den.
func divRound(num, den int64) int64 {
	if (num < 0) != (den < 0) {
		return (num - den/2) / den
	}
	return (num + den/2) / den
}

func mustSubsampling(subX, subY int) {
	if subX&^1 != 0 || subY&^1 != 0 {
		panic(fmt.Sprintf("warped: subsampling (%d, %d) must be 0 or 1", subX, subY))
	}
}
