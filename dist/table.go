// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "github.com/cockroachdb/errors"

// A Table is a function of an integer variable tabulated over a
// bounded interval. The value at k is stored at offset k-Lo. Tables
// are immutable after construction: the constructor copies the value
// slice it is given.
//
// Table itself evaluates strictly: asking for a point outside the
// support is an error. DiscretePMF and DiscreteCDF wrap it with the
// out-of-support conventions appropriate to each (0 mass, and 0/1
// saturation, respectively).
type Table struct {
	support Interval
	values  []float64
}

// NewTable tabulates values over support. It fails unless the value
// slice has exactly one entry per point of the support.
func NewTable(support Interval, values []float64) (*Table, error) {
	if !support.Bounded() {
		return nil, errors.Newf("cannot tabulate unbounded support %s", support)
	}
	if int64(len(values)) != support.Size() {
		return nil, errors.Newf("table length %d does not match support %s (size %d)",
			len(values), support, support.Size())
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return &Table{support: support, values: vs}, nil
}

// Support returns the interval the table is defined on.
func (t *Table) Support() Interval {
	return t.support
}

// At returns the tabulated value at k, or an error if k is outside
// the support.
func (t *Table) At(k int64) (float64, error) {
	if !t.support.Contains(k) {
		return 0, errors.Newf("point %d outside support %s", k, t.support)
	}
	return t.at(k), nil
}

// at returns the value at k. The caller must have checked containment.
func (t *Table) at(k int64) float64 {
	return t.values[k-t.support.Lo]
}

// Len returns the number of tabulated points.
func (t *Table) Len() int {
	return len(t.values)
}
