// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Azunyan1111/warped/warped"
)

// modelFlags are the flags shared by every command that takes a model.
type modelFlags struct {
	typ    string
	params string
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.typ, "type", "translation", "model type: translation, rotzoom, affine or homography")
	cmd.Flags().StringVar(&f.params, "params", "0,0", "comma-separated floating-point model coefficients")
}

// model integerizes the floating-point model given on the command line.
func (f *modelFlags) model() (warped.Model, error) {
	typ, err := warped.ParseTransformationType(f.typ)
	if err != nil {
		return warped.Model{}, err
	}
	params, err := parseParams(f.params)
	if err != nil {
		return warped.Model{}, err
	}
	if n := typ.NumParams(); len(params) != n {
		return warped.Model{}, errors.Errorf("%v model takes %d coefficients, got %d", typ, n, len(params))
	}
	return warped.Integerize(params, typ), nil
}

// parseParams parses comma-separated coefficients. A single trailing comma
// is allowed; any other empty field is an error.
func parseParams(s string) ([]float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ",")
	fields := lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	})
	if i := lo.IndexOf(fields, ""); i >= 0 {
		return nil, errors.Errorf("coefficient %d of %q is empty", i, s)
	}
	params := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coefficient %d", i)
		}
		params[i] = v
	}
	return params, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "point %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "point %q", s)
	}
	return x, y, nil
}
