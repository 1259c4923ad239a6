// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// A DiscretePMF is a probability mass function tabulated over a
// contiguous integer support. Every entry is a valid probability in
// [0, 1]; the table as a whole is not required to sum to one, since
// callers tabulating a truncated distribution renormalize explicitly
// (see PMFFromDist).
type DiscretePMF struct {
	*Table
}

// NewDiscretePMF wraps the given mass values as a PMF whose support
// starts at lo. It fails if the slice is empty or any entry is not a
// probability.
func NewDiscretePMF(lo int64, mass []float64) (*DiscretePMF, error) {
	if len(mass) == 0 {
		return nil, errors.New("empty probability mass table")
	}
	for i, m := range mass {
		if m < 0 || m > 1 || math.IsNaN(m) {
			return nil, errors.Newf("invalid probability %v at point %d", m, lo+int64(i))
		}
	}
	support, err := NewInterval(lo, lo+int64(len(mass))-1)
	if err != nil {
		return nil, err
	}
	t, err := NewTable(support, mass)
	if err != nil {
		return nil, err
	}
	return &DiscretePMF{Table: t}, nil
}

// PMFFromObservations builds an empirical PMF from a multiset of
// integer observations. The support is [min(obs), max(obs)] and the
// mass at k is the fraction of observations equal to k.
func PMFFromObservations(obs []int64) (*DiscretePMF, error) {
	if len(obs) == 0 {
		return nil, errors.New("no observations")
	}
	lo, hi := obs[0], obs[0]
	for _, o := range obs[1:] {
		lo, hi = min(lo, o), max(hi, o)
	}
	counts := make([]float64, hi-lo+1)
	for _, o := range obs {
		counts[o-lo]++
	}
	floats.Scale(1/float64(len(obs)), counts)
	return NewDiscretePMF(lo, counts)
}

// PMFFromDist tabulates d over its effective range and renormalizes
// the result to sum to exactly one. Since the effective range omits
// at most 1e-9 of total mass, the renormalized table deviates from
// the true distribution by roughly the omitted tail.
func PMFFromDist(d DiscreteDist) (*DiscretePMF, error) {
	r := d.EffectiveRange()
	if !r.Bounded() {
		return nil, errors.Newf("effective range %s is not finite", r)
	}
	mass := make([]float64, 0, r.Size())
	for k := range r.All() {
		mass = append(mass, d.PMF(k))
	}
	total := floats.Sum(mass)
	if Tol.Le(total, 0) {
		return nil, errors.Newf("no probability mass on effective range %s", r)
	}
	floats.Scale(1/total, mass)
	return NewDiscretePMF(r.Lo, mass)
}

// At returns the mass at k, and 0 for any k outside the support.
func (p *DiscretePMF) At(k int64) float64 {
	if !p.support.Contains(k) {
		return 0
	}
	return p.at(k)
}

// Mean returns Σ k·p(k) over the support.
func (p *DiscretePMF) Mean() float64 {
	m := 0.0
	for i, v := range p.values {
		m += float64(p.support.Lo+int64(i)) * v
	}
	return m
}

// Variance returns Σ p(k)·(k-mean)² over the support.
func (p *DiscretePMF) Variance() float64 {
	mean, v := p.Mean(), 0.0
	for i, m := range p.values {
		d := float64(p.support.Lo+int64(i)) - mean
		v += m * d * d
	}
	return v
}

// CDF derives the cumulative distribution of p by prefix summation.
// It fails if the result is not a valid CDF, which signals a
// non-normalized input table.
func (p *DiscretePMF) CDF() (*DiscreteCDF, error) {
	cum := make([]float64, len(p.values))
	floats.CumSum(cum, p.values)
	return newDiscreteCDF(p.support, cum)
}
