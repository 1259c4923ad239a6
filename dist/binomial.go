// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// binomialVariant selects the sampling implementation behind a
// Binomial. The variant is fixed at construction by
// binomialUseApprox and never changes.
type binomialVariant int

const (
	// binomialExact simulates n independent Bernoulli trials per
	// draw. O(n) per sample, exact for any parameters.
	binomialExact binomialVariant = iota

	// binomialApprox draws from the matched-moment normal
	// distribution, rounds, and clamps to [0, n]. O(1) per
	// sample; used only when the approximation's working window
	// fits inside the support.
	binomialApprox
)

// A Binomial is the distribution of the number of successes in n
// independent Bernoulli trials with success probability p.
type Binomial struct {
	n       int64
	p       float64
	variant binomialVariant
	norm    normalDist
}

// NewBinomial returns the binomial distribution with n trials and
// success probability p. It fails for a negative trial count or a p
// outside [0, 1].
func NewBinomial(n int64, p float64) (*Binomial, error) {
	if n < 0 {
		return nil, errors.Newf("negative trial count %d", n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errors.Newf("success probability %v outside [0, 1]", p)
	}
	b := &Binomial{n: n, p: p}
	b.norm = normalDist{mu: b.Mean(), sigma: b.StdDev()}
	if binomialUseApprox(n, p) {
		b.variant = binomialApprox
	}
	return b, nil
}

// binomialUseApprox reports whether normal-approximation sampling may
// stand in for exact Bernoulli simulation. Small trial counts always
// sample exactly. Otherwise the approximation is used only when its
// ±4σ window around the mean lies entirely inside [0, n]: the window
// containment bounds the truncation error of approximating a bounded
// discrete distribution with an unbounded continuous one, while the
// approximation avoids the O(n) per-sample cost for large n.
func binomialUseApprox(n int64, p float64) bool {
	if n < 10 {
		return false
	}
	mean := float64(n) * p
	sd := math.Sqrt(float64(n) * p * (1 - p))
	sup := Interval{Lo: 0, Hi: n}
	return sup.ContainsFloat(mean-4*sd) && sup.ContainsFloat(mean+4*sd)
}

// N returns the trial count.
func (b *Binomial) N() int64 { return b.n }

// P returns the per-trial success probability.
func (b *Binomial) P() float64 { return b.p }

// PMF returns P(X = k), evaluated in log space as
// log-choose(n, k) + k·log(p) + (n-k)·log(1-p) to stay finite for
// large n.
func (b *Binomial) PMF(k int64) float64 {
	if k < 0 || k > b.n {
		return 0
	}
	// The log form degenerates at the endpoints of p (0·log 0).
	if b.p == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if b.p == 1 {
		if k == b.n {
			return 1
		}
		return 0
	}
	lp := combin.LogGeneralizedBinomial(float64(b.n), float64(k)) +
		float64(k)*math.Log(b.p) + float64(b.n-k)*math.Log(1-b.p)
	return math.Exp(lp)
}

// CDF returns P(X <= k) via the regularized incomplete beta function.
func (b *Binomial) CDF(k int64) float64 {
	if k < 0 {
		return 0
	}
	if k >= b.n {
		return 1
	}
	if b.p == 0 {
		return 1
	}
	if b.p == 1 {
		return 0
	}
	return distuv.Binomial{N: float64(b.n), P: b.p}.CDF(float64(k))
}

// CDFBetween returns P(j < X <= k). It fails if j > k.
func (b *Binomial) CDFBetween(j, k int64) (float64, error) {
	return cdfBetween(b, j, k)
}

func (b *Binomial) Mean() float64 {
	return float64(b.n) * b.p
}

func (b *Binomial) Variance() float64 {
	return float64(b.n) * b.p * (1 - b.p)
}

func (b *Binomial) StdDev() float64 {
	return math.Sqrt(b.Variance())
}

// Median returns the conventional binomial median: the mean itself
// when it is (near-)integral or p is one half; otherwise the mean
// rounded to the nearest integer when p is far from one half, and the
// midpoint of floor(mean) and ceil(mean) in the skewed band
// (1-ln 2, ln 2] where neither rounding direction dominates.
func (b *Binomial) Median() float64 {
	mean := b.Mean()
	if Tol.Eq(mean, math.Round(mean)) || Tol.Eq(b.p, 0.5) {
		return mean
	}
	if b.p <= 1-math.Ln2 || b.p > math.Ln2 {
		return math.Round(mean)
	}
	return (math.Floor(mean) + math.Ceil(mean)) / 2
}

// Support returns [0, n], the exact non-zero-mass range.
func (b *Binomial) Support() Interval {
	return Interval{Lo: 0, Hi: b.n}
}

// EffectiveRange returns the mean ± 12σ clamped to [0, n]. The window
// is wider than the generic 7σ rule because the approximated tails
// need more margin to keep the cached table within the 1e-9 target.
func (b *Binomial) EffectiveRange() Interval {
	sd := b.StdDev()
	lo := int64(math.Floor(b.Mean() - 12*sd))
	hi := int64(math.Ceil(b.Mean() + 12*sd))
	return clipToSupport(Interval{Lo: lo, Hi: hi}, b.Support())
}

// Sample draws one value. The exact variant simulates n Bernoulli
// trials; the approximate variant rounds a matched-moment normal draw
// and clamps it to [0, n].
func (b *Binomial) Sample(src Source) int64 {
	if b.variant == binomialApprox {
		x := math.Round(b.norm.sample(src))
		switch {
		case x < 0:
			return 0
		case x > float64(b.n):
			return b.n
		}
		return int64(x)
	}
	var k int64
	for i := int64(0); i < b.n; i++ {
		if src.Float64() < b.p {
			k++
		}
	}
	return k
}

// SampleN draws n values.
func (b *Binomial) SampleN(src Source, n int) []int64 {
	return sampleN(b, src, n)
}
