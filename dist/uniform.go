// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// A Uniform is the discrete uniform distribution assigning equal mass
// to every integer in a bounded interval.
type Uniform struct {
	span Interval
}

// NewUniform returns the discrete uniform distribution over [lo, hi].
// It fails if hi < lo.
func NewUniform(lo, hi int64) (*Uniform, error) {
	span, err := NewInterval(lo, hi)
	if err != nil {
		return nil, err
	}
	return &Uniform{span: span}, nil
}

// PMF returns 1/size inside the span and 0 outside.
func (u *Uniform) PMF(k int64) float64 {
	if !u.span.Contains(k) {
		return 0
	}
	return 1 / float64(u.span.Size())
}

// CDF returns P(X <= k).
func (u *Uniform) CDF(k int64) float64 {
	switch {
	case k < u.span.Lo:
		return 0
	case k >= u.span.Hi:
		return 1
	}
	return float64(k-u.span.Lo+1) / float64(u.span.Size())
}

// CDFBetween returns P(j < X <= k). It fails if j > k.
func (u *Uniform) CDFBetween(j, k int64) (float64, error) {
	return cdfBetween(u, j, k)
}

func (u *Uniform) Mean() float64 {
	return (float64(u.span.Lo) + float64(u.span.Hi)) / 2
}

func (u *Uniform) Median() float64 {
	return u.Mean()
}

func (u *Uniform) Variance() float64 {
	n := float64(u.span.Size())
	return (n*n - 1) / 12
}

func (u *Uniform) StdDev() float64 {
	return math.Sqrt(u.Variance())
}

// Support returns the span.
func (u *Uniform) Support() Interval {
	return u.span
}

// EffectiveRange is the whole span: the support is already finite and
// every point carries mass.
func (u *Uniform) EffectiveRange() Interval {
	return u.span
}

// Sample draws one value.
func (u *Uniform) Sample(src Source) int64 {
	return u.span.Lo + src.Int64N(u.span.Size())
}

// SampleN draws n values.
func (u *Uniform) SampleN(src Source, n int) []int64 {
	return sampleN(u, src, n)
}
