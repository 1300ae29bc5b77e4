// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import "fmt"

// filterTaps is the sub-pixel interpolation filter bank, indexed by the
// fractional phase in 1/PixelPrecShifts pel. Each kernel covers the samples
// at offsets -2..3 around the integer base position and sums to
// 1<<FilterBits. Kernel 0 picks the base sample; kernel 64-k mirrors kernel k.
var filterTaps = [PixelPrecShifts][FilterTaps]int16{
	{0, 0, 128, 0, 0, 0}, {0, -1, 128, 2, -1, 0},
	{1, -3, 127, 4, -1, 0}, {1, -4, 126, 6, -2, 1},
	{1, -5, 126, 8, -3, 1}, {1, -6, 125, 11, -4, 1},
	{1, -7, 124, 13, -4, 1}, {2, -8, 123, 15, -5, 1},
	{2, -9, 122, 18, -6, 1}, {2, -10, 121, 20, -6, 1},
	{2, -11, 120, 22, -7, 2}, {2, -12, 119, 25, -8, 2},
	{3, -13, 117, 27, -8, 2}, {3, -13, 116, 29, -9, 2},
	{3, -14, 114, 32, -10, 3}, {3, -15, 113, 35, -10, 2},
	{3, -15, 111, 37, -11, 3}, {3, -16, 109, 40, -11, 3},
	{3, -16, 108, 42, -12, 3}, {4, -17, 106, 45, -13, 3},
	{4, -17, 104, 47, -13, 3}, {4, -17, 102, 50, -14, 3},
	{4, -17, 100, 52, -14, 3}, {4, -18, 98, 55, -15, 4},
	{4, -18, 96, 58, -15, 3}, {4, -18, 94, 60, -16, 4},
	{4, -18, 91, 63, -16, 4}, {4, -18, 89, 65, -16, 4},
	{4, -18, 87, 68, -17, 4}, {4, -18, 85, 70, -17, 4},
	{4, -18, 82, 73, -17, 4}, {4, -18, 80, 75, -17, 4},
	{4, -18, 78, 78, -18, 4}, {4, -17, 75, 80, -18, 4},
	{4, -17, 73, 82, -18, 4}, {4, -17, 70, 85, -18, 4},
	{4, -17, 68, 87, -18, 4}, {4, -16, 65, 89, -18, 4},
	{4, -16, 63, 91, -18, 4}, {4, -16, 60, 94, -18, 4},
	{3, -15, 58, 96, -18, 4}, {4, -15, 55, 98, -18, 4},
	{3, -14, 52, 100, -17, 4}, {3, -14, 50, 102, -17, 4},
	{3, -13, 47, 104, -17, 4}, {3, -13, 45, 106, -17, 4},
	{3, -12, 42, 108, -16, 3}, {3, -11, 40, 109, -16, 3},
	{3, -11, 37, 111, -15, 3}, {2, -10, 35, 113, -15, 3},
	{3, -10, 32, 114, -14, 3}, {2, -9, 29, 116, -13, 3},
	{2, -8, 27, 117, -13, 3}, {2, -8, 25, 119, -12, 2},
	{2, -7, 22, 120, -11, 2}, {1, -6, 20, 121, -10, 2},
	{1, -6, 18, 122, -9, 2}, {1, -5, 15, 123, -8, 2},
	{1, -4, 13, 124, -7, 1}, {1, -4, 11, 125, -6, 1},
	{1, -3, 8, 126, -5, 1}, {1, -2, 6, 126, -4, 1},
	{0, -1, 4, 127, -3, 1}, {0, -1, 2, 128, -1, 0},
}

// Kernel returns a copy of the filter kernel for the given phase.
// It panics if phase is outside [0, PixelPrecShifts).
func Kernel(phase int) [FilterTaps]int16 {
	if phase < 0 || phase >= PixelPrecShifts {
		panic(fmt.Sprintf("warped: filter phase %d out of range", phase))
	}
	return filterTaps[phase]
}

// filter6 applies kernel f to six consecutive samples.
func filter6(f *[FilterTaps]int16, s *[FilterTaps]int32) int32 {
	return int32(f[0])*s[0] + int32(f[1])*s[1] + int32(f[2])*s[2] +
		int32(f[3])*s[3] + int32(f[4])*s[4] + int32(f[5])*s[5]
}
