// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/Azunyan1111/warped/warped"
)

// loadPlane decodes an image file and returns its luma as a plane.
func loadPlane(path string) (warped.Plane[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return warped.Plane[uint8]{}, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return warped.Plane[uint8]{}, errors.Wrapf(err, "decode %s", path)
	}
	b := src.Bounds()
	gray, ok := src.(*image.Gray)
	if !ok || b.Min != (image.Point{}) {
		gray = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	}
	return warped.Plane[uint8]{
		Pix:    gray.Pix,
		Width:  gray.Rect.Dx(),
		Height: gray.Rect.Dy(),
		Stride: gray.Stride,
	}, nil
}

// savePNG writes a block as an 8-bit grayscale PNG.
func savePNG(path string, b warped.Block[uint8]) error {
	img := &image.Gray{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}
