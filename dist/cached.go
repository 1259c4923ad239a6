// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// tableDist implements the full DiscreteDist contract over a
// pre-tabulated PMF and its derived CDF. Every query is a table
// lookup.
type tableDist struct {
	pmf *DiscretePMF
	cdf *DiscreteCDF
}

func newTableDist(pmf *DiscretePMF) (tableDist, error) {
	cdf, err := pmf.CDF()
	if err != nil {
		return tableDist{}, err
	}
	return tableDist{pmf: pmf, cdf: cdf}, nil
}

func (t tableDist) PMF(k int64) float64 {
	return t.pmf.At(k)
}

func (t tableDist) CDF(k int64) float64 {
	return t.cdf.At(k)
}

func (t tableDist) CDFBetween(j, k int64) (float64, error) {
	return t.cdf.Between(j, k)
}

func (t tableDist) Mean() float64 {
	return t.pmf.Mean()
}

func (t tableDist) Median() float64 {
	return t.cdf.Median()
}

func (t tableDist) Variance() float64 {
	return t.pmf.Variance()
}

func (t tableDist) StdDev() float64 {
	return math.Sqrt(t.Variance())
}

func (t tableDist) Support() Interval {
	return t.pmf.Support()
}

func (t tableDist) EffectiveRange() Interval {
	return t.pmf.Support()
}

func (t tableDist) sample(src Source) int64 {
	k, err := t.cdf.Sample(src.Float64())
	if err != nil {
		// Sample validates only the uniform draw, which is in
		// [0, 1) by the Source contract.
		panic(err)
	}
	return k
}

// A CachedDist is a numerically equivalent, cheaper-to-query
// substitute for another distribution: its PMF and CDF are tabulated
// once over the wrapped distribution's effective range, after which
// every query is O(1) or a binary search instead of a simulation or
// special-function evaluation. It keeps no reference to the original
// distribution.
type CachedDist struct {
	tableDist
}

// Cache tabulates d over its effective range and returns the caching
// adapter. The tabulated mass is renormalized to sum to one, so the
// adapter deviates from d by no more than roughly the omitted tail
// mass (under 1e-9 when d's effective-range rule meets its target).
func Cache(d DiscreteDist) (*CachedDist, error) {
	pmf, err := PMFFromDist(d)
	if err != nil {
		return nil, err
	}
	td, err := newTableDist(pmf)
	if err != nil {
		return nil, err
	}
	return &CachedDist{tableDist: td}, nil
}

// Sample draws one value by inverse-transform lookup.
func (c *CachedDist) Sample(src Source) int64 {
	return c.sample(src)
}

// SampleN draws n values.
func (c *CachedDist) SampleN(src Source, n int) []int64 {
	return sampleN(c, src, n)
}
