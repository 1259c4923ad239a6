// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distview inspects discrete probability distributions: it prints
// their moments and tabulated pmf/cdf, and draws sample batches.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:     "distview",
		HelpName: "distview",
		Usage:    "inspect discrete probability distributions",
		Commands: []*cli.Command{
			&ShowCommand,
			&SampleCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
