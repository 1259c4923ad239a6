// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Fprint renders the pmf and cdf of d over iv as a fixed-width table
// with one row per integer. The format is a diagnostic aid, not a
// durable serialization.
func Fprint(w io.Writer, d DiscreteDist, iv Interval) error {
	if !iv.Bounded() {
		return errors.Newf("cannot tabulate unbounded interval %s", iv)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"k", "pmf", "cdf"})
	for k := range iv.All() {
		tw.AppendRow(table.Row{
			k,
			fmt.Sprintf("%.9f", d.PMF(k)),
			fmt.Sprintf("%.9f", d.CDF(k)),
		})
	}
	tw.Render()
	return nil
}
