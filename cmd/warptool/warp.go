// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Azunyan1111/warped/warped"
)

// scaleFlags select the reference rescaling factors.
type scaleFlags struct {
	x, y int
}

func (f *scaleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.x, "xscale", warped.ScaleNeutral, "horizontal reference scale in 1/16 units")
	cmd.Flags().IntVar(&f.y, "yscale", warped.ScaleNeutral, "vertical reference scale in 1/16 units")
}

func (f *scaleFlags) config() (warped.Config, error) {
	if f.x <= 0 || f.y <= 0 {
		return warped.Config{}, errors.Errorf("scale (%d, %d) must be positive", f.x, f.y)
	}
	cfg := warped.DefaultConfig()
	cfg.XScale, cfg.YScale = f.x, f.y
	return cfg, nil
}

func newWarpCmd() *cobra.Command {
	var (
		mf     modelFlags
		sf     scaleFlags
		ref    string
		out    string
		width  int
		height int
		tile   int
	)
	cmd := &cobra.Command{
		Use:   "warp",
		Short: "Warp a reference image with a model and write the prediction as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := mf.model()
			if err != nil {
				return err
			}
			cfg, err := sf.config()
			if err != nil {
				return err
			}
			if tile <= 0 {
				return errors.Errorf("tile size %d must be positive", tile)
			}
			plane, err := loadPlane(ref)
			if err != nil {
				return err
			}
			if width <= 0 {
				width = plane.Width
			}
			if height <= 0 {
				height = plane.Height
			}

			dst := warped.Block[uint8]{
				Pix:    make([]uint8, width*height),
				Stride: width,
				Width:  width,
				Height: height,
			}
			if err := warped.WarpPlaneTiled(cmd.Context(), &m, plane, dst, cfg, tile); err != nil {
				return err
			}
			if err := savePNG(out, dst); err != nil {
				return err
			}
			p := message.NewPrinter(language.English)
			p.Fprintf(cmd.OutOrStdout(), "%s: %dx%d %v prediction, %d pixels\n", out, width, height, m.Type, width*height)
			return nil
		},
	}
	mf.register(cmd)
	sf.register(cmd)
	cmd.Flags().StringVar(&ref, "ref", "", "reference image")
	cmd.Flags().StringVarP(&out, "out", "o", "pred.png", "output PNG")
	cmd.Flags().IntVar(&width, "width", 0, "prediction width (default: reference width)")
	cmd.Flags().IntVar(&height, "height", 0, "prediction height (default: reference height)")
	cmd.Flags().IntVar(&tile, "tile", 64, "tile size for parallel warping")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}
