// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import "github.com/Azunyan1111/warped/internal/scratch"

var (
	scratch8  scratch.Pool[uint8]
	scratch16 scratch.Pool[uint16]
)

// scratchBlock returns an exclusive w x h block and the function releasing it.
func scratchBlock[T Sample](col, row, w, h int) (Block[T], func()) {
	b := Block[T]{Stride: w, Col: col, Row: row, Width: w, Height: h}
	switch any(b.Pix).(type) {
	case []uint8:
		pix := scratch8.Get(w * h)
		b.Pix = any(pix).([]T)
		return b, func() { scratch8.Put(pix) }
	case []uint16:
		pix := scratch16.Get(w * h)
		b.Pix = any(pix).([]T)
		return b, func() { scratch16.Put(pix) }
	}
	b.Pix = make([]T, w*h)
	return b, func() {}
}

// warpSSE warps the region of target with m and returns the sum of squared
// differences against target, together with the sum of squared differences
// between target and the co-located reference pixels.
func warpSSE[T Sample](m *Model, ref *Plane[T], target *Block[T], cfg Config) (warped, still uint64) {
	maxVal := maxValue[T](cfg)
	mustValid(m.Type)
	ref.check()
	target.check()

	pred, release := scratchBlock[T](target.Col, target.Row, target.Width, target.Height)
	defer release()
	warpBlock(m, ref, &pred, cfg, maxVal)

	for i := 0; i < target.Height; i++ {
		r := clampInt(target.Row+i, 0, ref.Height-1)
		for j := 0; j < target.Width; j++ {
			t := int64(target.Pix[i*target.Stride+j])
			d := t - int64(pred.Pix[i*pred.Stride+j])
			warped += uint64(d * d)
			c := clampInt(target.Col+j, 0, ref.Width-1)
			d = t - int64(ref.Pix[r*ref.Stride+c])
			still += uint64(d * d)
		}
	}
	return warped, still
}

// ErrorAdvantage scores how well m predicts target from ref: the squared
// error of the warped prediction divided by the squared error of predicting
// target with the co-located reference pixels. An exact model scores 0 and a
// model no better than zero motion scores 1 or more. When the co-located
// error is zero the divisor is 1.
//
// target.Col and target.Row locate the block in the plane; cfg applies as
// in WarpPlane.
func ErrorAdvantage[T Sample](m *Model, ref Plane[T], target Block[T], cfg Config) float64 {
	warped, still := warpSSE(m, &ref, &target, cfg)
	return advantage(warped, still)
}

// WarpMSE returns the mean squared error per pixel between target and its
// prediction by m.
func WarpMSE[T Sample](m *Model, ref Plane[T], target Block[T], cfg Config) float64 {
	warped, _ := warpSSE(m, &ref, &target, cfg)
	return float64(warped) / float64(target.Width*target.Height)
}

// Score returns ErrorAdvantage and WarpMSE of m for target, warping the
// block once.
func Score[T Sample](m *Model, ref Plane[T], target Block[T], cfg Config) (adv, mse float64) {
	warped, still := warpSSE(m, &ref, &target, cfg)
	return advantage(warped, still), float64(warped) / float64(target.Width*target.Height)
}

func advantage(warped, still uint64) float64 {
	if still == 0 {
		still = 1
	}
	return float64(warped) / float64(still)
}
