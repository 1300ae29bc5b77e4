// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import "fmt"

// This file implements the plane warper: every destination pixel is mapped
// back into the reference plane and interpolated with the filter bank.

// Reference rescaling factors carry ScaleBits fractional bits.
const (
	ScaleBits    = 4
	ScaleNeutral = 1 << ScaleBits
)

// Sample is a pixel type: uint8 for 8-bit video, uint16 for higher bit depths.
type Sample interface {
	~uint8 | ~uint16
}

// Plane is a reference plane of Width x Height samples.
type Plane[T Sample] struct {
	Pix    []T
	Width  int
	Height int
	Stride int
}

// Block is a Width x Height region of a plane whose top-left pixel sits at
// (Col, Row) in plane coordinates. Pix[0] holds that top-left pixel.
type Block[T Sample] struct {
	Pix    []T
	Stride int
	Col    int
	Row    int
	Width  int
	Height int
}

// Config holds the per-plane parameters shared by a warp.
type Config struct {
	// SubsamplingX and SubsamplingY are the chroma subsampling shifts of the
	// plane, 0 or 1.
	SubsamplingX int
	SubsamplingY int
	// XScale and YScale rescale projected positions into a reference of a
	// different size, in units of 1/ScaleNeutral.
	XScale int
	YScale int
	// BitDepth bounds the output range to [0, 1<<BitDepth-1].
	BitDepth int
}

// DefaultConfig returns the configuration of an 8-bit luma plane with an
// unscaled reference.
func DefaultConfig() Config {
	return Config{XScale: ScaleNeutral, YScale: ScaleNeutral, BitDepth: 8}
}

func (c Config) scaled() bool {
	return c.XScale != ScaleNeutral || c.YScale != ScaleNeutral
}

// maxValue validates c for samples of type T and returns the largest
// output value.
func maxValue[T Sample](c Config) int32 {
	mustSubsampling(c.SubsamplingX, c.SubsamplingY)
	if c.XScale <= 0 || c.YScale <= 0 {
		panic(fmt.Sprintf("warped: invalid scale (%d, %d)", c.XScale, c.YScale))
	}
	if c.BitDepth < 8 || c.BitDepth > 16 || 1<<c.BitDepth-1 > int(^T(0)) {
		panic(fmt.Sprintf("warped: bit depth %d not representable by %T", c.BitDepth, T(0)))
	}
	return 1<<c.BitDepth - 1
}

func (p *Plane[T]) check() {
	if p.Width <= 0 || p.Height <= 0 || p.Stride < p.Width || len(p.Pix) < (p.Height-1)*p.Stride+p.Width {
		panic(fmt.Sprintf("warped: invalid reference plane %dx%d stride %d len %d",
			p.Width, p.Height, p.Stride, len(p.Pix)))
	}
}

func (b *Block[T]) check() {
	if b.Width <= 0 || b.Height <= 0 || b.Stride < b.Width || len(b.Pix) < (b.Height-1)*b.Stride+b.Width {
		panic(fmt.Sprintf("warped: invalid block %dx%d stride %d len %d",
			b.Width, b.Height, b.Stride, len(b.Pix)))
	}
}

// sub returns the w x h region of b starting c columns and r rows in.
func (b *Block[T]) sub(c, r, w, h int) Block[T] {
	return Block[T]{
		Pix:    b.Pix[r*b.Stride+c:],
		Stride: b.Stride,
		Col:    b.Col + c,
		Row:    b.Row + r,
		Width:  w,
		Height: h,
	}
}

// WarpPlane writes into dst the prediction of the block at (dst.Col, dst.Row)
// obtained by warping ref with m. Reference samples outside the plane are
// replaced by the nearest edge sample.
//
// It panics if m, ref, dst or cfg are invalid.
func WarpPlane[T Sample](m *Model, ref Plane[T], dst Block[T], cfg Config) {
	mustValid(m.Type)
	maxVal := maxValue[T](cfg)
	ref.check()
	dst.check()
	warpBlock(m, &ref, &dst, cfg, maxVal)
}

func warpBlock[T Sample](m *Model, ref *Plane[T], dst *Block[T], cfg Config, maxVal int32) {
	scaled := cfg.scaled()
	for i := 0; i < dst.Height; i++ {
		row := dst.Pix[i*dst.Stride : i*dst.Stride+dst.Width]
		for j := range row {
			x, y := m.project(dst.Col+j, dst.Row+i, cfg.SubsamplingX, cfg.SubsamplingY)
			if scaled {
				x = scalePosition(x, cfg.XScale)
				y = scalePosition(y, cfg.YScale)
			}
			row[j] = interpolate(ref, x, y, maxVal)
		}
	}
}

func scalePosition(v, scale int) int {
	return int(roundPowerOfTwoSigned(int64(v)*int64(scale), ScaleBits))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// interpolate returns the sample at (x, y), given in 1/PixelPrecShifts pel.
// The 6x6 neighbourhood is filtered horizontally and then vertically; the
// intermediate sums stay in int32 for samples of up to 16 bits.
func interpolate[T Sample](ref *Plane[T], x, y int, maxVal int32) T {
	ix, iy := x>>PixelPrecBits, y>>PixelPrecBits
	sx, sy := x&(PixelPrecShifts-1), y&(PixelPrecShifts-1)

	if sx == 0 && sy == 0 {
		// Integer position.
		r := clampInt(iy, 0, ref.Height-1)
		c := clampInt(ix, 0, ref.Width-1)
		return ref.Pix[r*ref.Stride+c]
	}

	var cols [FilterTaps]int
	for t := range cols {
		cols[t] = clampInt(ix+t-(FilterTaps/2-1), 0, ref.Width-1)
	}

	fx, fy := &filterTaps[sx], &filterTaps[sy]
	var tmp, s [FilterTaps]int32
	for k := range tmp {
		r := clampInt(iy+k-(FilterTaps/2-1), 0, ref.Height-1)
		line := ref.Pix[r*ref.Stride:]
		for t, c := range cols {
			s[t] = int32(line[c])
		}
		tmp[k] = filter6(fx, &s)
	}

	v := int32(roundPowerOfTwoSigned(int64(filter6(fy, &tmp)), 2*FilterBits))
	return T(clipPixel(v, maxVal))
}

// clipPixel clamps a filtered value to [0, maxVal].
func clipPixel(v, maxVal int32) int32 {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
