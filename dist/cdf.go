// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// A DiscreteCDF is a cumulative distribution function tabulated over
// a contiguous integer support. The values are non-decreasing and the
// final value is 1 within Tol; both are enforced at construction.
type DiscreteCDF struct {
	*Table
}

// medianPerturb nudges the inverse-CDF target past a plateau that
// sits exactly at one half, so that a discrete median with equal mass
// on both sides resolves to the conventional midpoint.
const medianPerturb = 1e-8

func newDiscreteCDF(support Interval, cum []float64) (*DiscreteCDF, error) {
	if len(cum) == 0 {
		return nil, errors.New("empty cumulative table")
	}
	for i, v := range cum {
		if math.IsNaN(v) || !Tol.Ge(v, 0) || !Tol.Le(v, 1) {
			return nil, errors.Newf("invalid cumulative probability %v at point %d", v, support.Lo+int64(i))
		}
	}
	if !Tol.NonDecreasing(cum) {
		return nil, errors.New("cumulative table is not non-decreasing")
	}
	if last := cum[len(cum)-1]; !Tol.Eq(last, 1) {
		return nil, errors.Newf("cumulative table ends at %v, not 1", last)
	}
	t, err := NewTable(support, cum)
	if err != nil {
		return nil, err
	}
	return &DiscreteCDF{Table: t}, nil
}

// CDFFromObservations builds the cumulative distribution of the
// empirical PMF of obs.
func CDFFromObservations(obs []int64) (*DiscreteCDF, error) {
	pmf, err := PMFFromObservations(obs)
	if err != nil {
		return nil, err
	}
	return pmf.CDF()
}

// At returns P(X <= k): 0 below the support, 1 above it, and the
// tabulated value within.
func (c *DiscreteCDF) At(k int64) float64 {
	switch {
	case k < c.support.Lo:
		return 0
	case k > c.support.Hi:
		return 1
	}
	return c.at(k)
}

// Between returns the half-open range probability P(j < X <= k). It
// fails if j > k.
func (c *DiscreteCDF) Between(j, k int64) (float64, error) {
	if j > k {
		return 0, errInvertedRange(j, k)
	}
	return c.At(k) - c.At(j), nil
}

// InvCDF returns the smallest k in the support with P(X <= k) >=
// target. It fails if target is outside [0, 1]. For a valid table a
// result always exists; falling off the end is reported as an
// assertion failure, not bad input.
//
// The lookup is a binary search over the monotone cumulative table,
// which breaks ties on flat regions the same way a left-to-right scan
// would: both return the leftmost qualifying point.
func (c *DiscreteCDF) InvCDF(target float64) (int64, error) {
	if math.IsNaN(target) || target < 0 || target > 1 {
		return 0, errors.Newf("target probability %v outside [0, 1]", target)
	}
	i := sort.Search(len(c.values), func(i int) bool {
		return Tol.Ge(c.values[i], target)
	})
	if i == len(c.values) {
		return 0, errors.AssertionFailedf("no entry reaches cumulative probability %v; table is not normalized", target)
	}
	return c.support.Lo + int64(i), nil
}

// Median returns the median of the distribution. When the CDF passes
// through one half exactly, the median is the midpoint between the
// inverse at 0.5 and the inverse just past the plateau.
func (c *DiscreteCDF) Median() float64 {
	k, err := c.InvCDF(0.5)
	if err != nil {
		return nan
	}
	if !Tol.Eq(c.At(k), 0.5) {
		return float64(k)
	}
	k2, err := c.InvCDF(0.5 + medianPerturb)
	if err != nil {
		return nan
	}
	return (float64(k) + float64(k2)) / 2
}

// Sample maps a uniform draw u in [0, 1) through the inverse CDF,
// implementing inverse-transform sampling.
func (c *DiscreteCDF) Sample(u float64) (int64, error) {
	return c.InvCDF(u)
}

// PMF recovers the probability mass function by first-differencing
// the cumulative table, inverting the prefix summation of
// DiscretePMF.CDF.
func (c *DiscreteCDF) PMF() (*DiscretePMF, error) {
	mass := make([]float64, len(c.values))
	prev := 0.0
	for i, v := range c.values {
		m := v - prev
		if m < 0 {
			if !Tol.Eq(m, 0) {
				return nil, errors.AssertionFailedf("cumulative table decreases by %v at offset %d", -m, i)
			}
			m = 0 // round-off dust from differencing near-equal sums
		}
		mass[i] = m
		prev = v
	}
	return NewDiscretePMF(c.support.Lo, mass)
}
