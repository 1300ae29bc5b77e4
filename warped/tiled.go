// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package warped

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// WarpPlaneTiled is WarpPlane split into tile x tile pieces that are warped
// concurrently. The output is identical to a single WarpPlane call. It stops
// scheduling tiles once ctx is done and returns the context's error; dst is
// then only partially written.
func WarpPlaneTiled[T Sample](ctx context.Context, m *Model, ref Plane[T], dst Block[T], cfg Config, tile int) error {
	mustValid(m.Type)
	maxVal := maxValue[T](cfg)
	ref.check()
	dst.check()
	if tile <= 0 {
		panic(fmt.Sprintf("warped: invalid tile size %d", tile))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	var stopped error
schedule:
	for r := 0; r < dst.Height; r += tile {
		for c := 0; c < dst.Width; c += tile {
			if err := gctx.Err(); err != nil {
				stopped = err
				break schedule
			}
			part := dst.sub(c, r, min(tile, dst.Width-c), min(tile, dst.Height-r))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				warpBlock(m, &ref, &part, cfg, maxVal)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "warped: tiled warp")
	}
	if stopped != nil {
		return errors.Wrap(stopped, "warped: tiled warp")
	}
	return nil
}
