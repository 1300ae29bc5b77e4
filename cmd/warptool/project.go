// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/Azunyan1111/warped/warped"
)

func newProjectCmd() *cobra.Command {
	var (
		mf         modelFlags
		subX, subY int
	)
	cmd := &cobra.Command{
		Use:   "project [x,y ...]",
		Short: "Print the integerized model and the projection of points through it",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.model()
			if err != nil {
				return err
			}
			if subX&^1 != 0 || subY&^1 != 0 {
				return errors.Errorf("subsampling (%d, %d) must be 0 or 1", subX, subY)
			}
			points := make([]int, 0, 2*len(args))
			for _, a := range args {
				x, y, err := parsePoint(a)
				if err != nil {
					return err
				}
				points = append(points, x, y)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v %v\n", m.Type, m.Mat[:m.Type.NumParams()])
			fmt.Fprintf(w, "%v\n", mat.Formatted(m.Matrix(), mat.Squeeze()))

			n := len(points) / 2
			proj := make([]int, len(points))
			m.Project(points, proj, n, 2, 2, subX, subY)
			for i := 0; i < n; i++ {
				px, py := proj[2*i], proj[2*i+1]
				fmt.Fprintf(w, "(%d, %d) -> (%d, %d) = (%.4f, %.4f)\n",
					points[2*i], points[2*i+1], px, py,
					float64(px)/warped.PixelPrecShifts, float64(py)/warped.PixelPrecShifts)
			}
			return nil
		},
	}
	mf.register(cmd)
	cmd.Flags().IntVar(&subX, "subx", 0, "horizontal chroma subsampling shift")
	cmd.Flags().IntVar(&subY, "suby", 0, "vertical chroma subsampling shift")
	return cmd
}
