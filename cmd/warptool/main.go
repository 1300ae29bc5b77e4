// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command warptool applies and scores warped motion models on grayscale
// images.
//
// Usage:
//
//	warptool warp    --ref in.png --out pred.png --type rotzoom --params 1.5,-2,1.02,0.01
//	warptool score   --ref ref.png --target cur.png --type affine --params ... [--block 16]
//	warptool project --type homography --params ... 10,20 30,40
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("warptool: ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "warptool",
		Short:         "Apply and score warped motion models on grayscale images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(os.Stdout)
	root.AddCommand(newWarpCmd(), newScoreCmd(), newProjectCmd())
	return root
}
