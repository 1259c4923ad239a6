// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/statforge/probdist/dist"
	"github.com/statforge/probdist/logger"
)

// ShowCommand prints a distribution's moments and its tabulated
// pmf/cdf over the effective range or an explicit range.
var ShowCommand = cli.Command{
	Action:    showAction,
	Name:      "show",
	Usage:     "print moments and the pmf/cdf table of a distribution",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&distFlag,
		&cli.Int64Flag{
			Name:  "from",
			Usage: "lower bound of the tabulated range (default: effective range)",
		},
		&cli.Int64Flag{
			Name:  "to",
			Usage: "upper bound of the tabulated range (default: effective range)",
		},
		&logger.LogLevelFlag,
	},
	Description: "show parses a distribution descriptor such as \"poisson; 4.2\" and tabulates it",
}

var distFlag = cli.StringFlag{
	Name:     "dist",
	Aliases:  []string{"d"},
	Usage:    "distribution descriptor, e.g. \"binomial; 100, 0.3\"",
	Required: true,
}

func showAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "DistShow")
	d, err := dist.Parse(ctx.String(distFlag.Name))
	if err != nil {
		return err
	}
	r := d.EffectiveRange()
	if ctx.IsSet("from") || ctx.IsSet("to") {
		from, to := r.Lo, r.Hi
		if ctx.IsSet("from") {
			from = ctx.Int64("from")
		}
		if ctx.IsSet("to") {
			to = ctx.Int64("to")
		}
		if r, err = dist.NewInterval(from, to); err != nil {
			return err
		}
	}
	log.Debugf("tabulating over %s", r)
	fmt.Printf("mean %.6g  median %.6g  variance %.6g  std dev %.6g\n\n",
		d.Mean(), d.Median(), d.Variance(), d.StdDev())
	return dist.Fprint(os.Stdout, d, r)
}
