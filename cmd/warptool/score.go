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

// blockScore is the score of one target block.
type blockScore struct {
	col, row  int
	advantage float64
	mse       float64
}

// scoreBlocks splits target into size x size blocks (smaller at the right
// and bottom edges) and scores each against ref.
func scoreBlocks(m *warped.Model, ref, target warped.Plane[uint8], cfg warped.Config, size int) []blockScore {
	var scores []blockScore
	for row := 0; row < target.Height; row += size {
		for col := 0; col < target.Width; col += size {
			b := warped.Block[uint8]{
				Pix:    target.Pix[row*target.Stride+col:],
				Stride: target.Stride,
				Col:    col,
				Row:    row,
				Width:  min(size, target.Width-col),
				Height: min(size, target.Height-row),
			}
			adv, mse := warped.Score(m, ref, b, cfg)
			scores = append(scores, blockScore{col: col, row: row, advantage: adv, mse: mse})
		}
	}
	return scores
}

func newScoreCmd() *cobra.Command {
	var (
		mf      modelFlags
		sf      scaleFlags
		ref     string
		target  string
		size    int
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score how well a model predicts a target image from a reference",
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
			if size <= 0 {
				return errors.Errorf("block size %d must be positive", size)
			}
			refPlane, err := loadPlane(ref)
			if err != nil {
				return err
			}
			targetPlane, err := loadPlane(target)
			if err != nil {
				return err
			}

			scores := scoreBlocks(&m, refPlane, targetPlane, cfg, size)
			p := message.NewPrinter(language.English)
			w := cmd.OutOrStdout()
			var sumAdv, sumMSE float64
			for _, s := range scores {
				sumAdv += s.advantage
				sumMSE += s.mse
				if verbose {
					p.Fprintf(w, "block (%d,%d): advantage %.4f mse %.2f\n", s.col, s.row, s.advantage, s.mse)
				}
			}
			n := float64(len(scores))
			p.Fprintf(w, "%v model, %d blocks of %d pixels: mean advantage %.4f, mean mse %.2f\n",
				m.Type, len(scores), size*size, sumAdv/n, sumMSE/n)
			return nil
		},
	}
	mf.register(cmd)
	sf.register(cmd)
	cmd.Flags().StringVar(&ref, "ref", "", "reference image")
	cmd.Flags().StringVar(&target, "target", "", "target (current) image")
	cmd.Flags().IntVar(&size, "block", 16, "block size")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every block")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
