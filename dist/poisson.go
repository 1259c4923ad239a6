// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// poissonRegimeKind selects the sampling strategy behind a Poisson.
// The regime is fixed at construction by poissonRegime.
type poissonRegimeKind int

const (
	// poissonExactRegime (mean < 1) samples by lookup in a
	// truncated cumulative table built at construction.
	poissonExactRegime poissonRegimeKind = iota

	// poissonKnuthRegime (1 <= mean < 50) uses Knuth's
	// multiplicative accept/reject sampler.
	poissonKnuthRegime

	// poissonNormalRegime (mean >= 50) draws from the
	// matched-moment normal distribution.
	poissonNormalRegime
)

// poissonRegime brackets the mean into a sampling strategy.
func poissonRegime(mean float64) poissonRegimeKind {
	switch {
	case mean < 1:
		return poissonExactRegime
	case mean < 50:
		return poissonKnuthRegime
	}
	return poissonNormalRegime
}

const (
	// poissonTailEps is the tail mass at which the exact regime's
	// cumulative table is truncated.
	poissonTailEps = 1e-15

	// poissonExactMaxTable caps the truncation search. A small
	// mean reaches the tail target within a handful of entries;
	// exhausting the cap means the mean was miscategorized.
	poissonExactMaxTable = 100
)

// A Poisson is the distribution of the number of events in a fixed
// window given a constant event rate, parameterized by its mean.
type Poisson struct {
	mean   float64
	regime poissonRegimeKind

	selectCDF []float64 // truncated cumulative table (exact regime)
	maxIter   int       // Knuth termination cap

	norm normalDist
	cell tableCell // lazily tabulated PMF/CDF, for the table-based median
}

// NewPoisson returns the Poisson distribution with the given mean. It
// fails for a non-positive or non-finite mean, and for regime guards
// that detect a mean miscategorized by the strategy thresholds.
func NewPoisson(mean float64) (*Poisson, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || mean <= 0 {
		return nil, errors.Newf("non-positive mean %v", mean)
	}
	p := &Poisson{mean: mean, regime: poissonRegime(mean)}
	p.norm = normalDist{mu: mean, sigma: math.Sqrt(mean)}
	switch p.regime {
	case poissonExactRegime:
		cum := 0.0
		for k := 0; k < poissonExactMaxTable; k++ {
			cum += p.PMF(int64(k))
			p.selectCDF = append(p.selectCDF, cum)
			if 1-cum < poissonTailEps {
				return p, nil
			}
		}
		return nil, errors.Newf("no truncation point within %d entries for mean %v; exact regime misselected",
			poissonExactMaxTable, mean)
	case poissonKnuthRegime:
		p.maxIter = int(math.Round(1000 * mean))
		if p.maxIter == 0 {
			return nil, errors.Newf("iteration cap rounds to zero for mean %v", mean)
		}
	}
	return p, nil
}

// LogPMF returns log P(X = k): -mean + k·log(mean) - logGamma(k+1),
// and -inf for k < 0.
func (p *Poisson) LogPMF(k int64) float64 {
	if k < 0 {
		return -inf
	}
	return distuv.Poisson{Lambda: p.mean}.LogProb(float64(k))
}

// PMF returns P(X = k), evaluated in log space for stability at large
// k.
func (p *Poisson) PMF(k int64) float64 {
	return math.Exp(p.LogPMF(k))
}

// CDF returns P(X <= k) via the regularized incomplete gamma
// function.
func (p *Poisson) CDF(k int64) float64 {
	if k < 0 {
		return 0
	}
	return distuv.Poisson{Lambda: p.mean}.CDF(float64(k))
}

// CDFBetween returns P(j < X <= k). It fails if j > k.
func (p *Poisson) CDFBetween(j, k int64) (float64, error) {
	return cdfBetween(p, j, k)
}

func (p *Poisson) Mean() float64 {
	return p.mean
}

func (p *Poisson) Variance() float64 {
	return p.mean
}

func (p *Poisson) StdDev() float64 {
	return math.Sqrt(p.mean)
}

// Median returns the mean in the normal regime, where the
// distribution is effectively symmetric. The smaller regimes derive
// the median from the lazily tabulated CDF; the first call pays for
// the tabulation and later calls reuse it.
func (p *Poisson) Median() float64 {
	if p.regime == poissonNormalRegime {
		return p.mean
	}
	_, cdf, err := p.cell.tables(p)
	if err != nil {
		// The effective range always carries mass for a
		// validated mean; reaching this is a logic bug.
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "tabulating poisson(%v)", p.mean))
	}
	return cdf.Median()
}

// Support returns [0, +inf).
func (p *Poisson) Support() Interval {
	return Interval{Lo: 0, Hi: MaxSupport}
}

// EffectiveRange widens with the mean in five tiers, each tuned to
// keep the omitted tail under 1e-9 while minimizing table size.
func (p *Poisson) EffectiveRange() Interval {
	sd := p.StdDev()
	switch {
	case p.mean < 0.01:
		return Interval{Lo: 0, Hi: 3}
	case p.mean < 0.1:
		return Interval{Lo: 0, Hi: 6}
	case p.mean < 1:
		return Interval{Lo: 0, Hi: 12}
	case p.mean < 10:
		return Interval{Lo: 0, Hi: int64(math.Ceil(12 * sd))}
	}
	lo := int64(math.Floor(p.mean - 8*sd))
	if lo < 0 {
		lo = 0
	}
	return Interval{Lo: lo, Hi: int64(math.Ceil(p.mean + 8*sd))}
}

// Sample draws one value using the regime selected at construction.
func (p *Poisson) Sample(src Source) int64 {
	switch p.regime {
	case poissonExactRegime:
		u := src.Float64()
		for k, cum := range p.selectCDF {
			if u <= cum {
				return int64(k)
			}
		}
		// u landed in the truncated tail (mass < 1e-15).
		return int64(len(p.selectCDF) - 1)
	case poissonKnuthRegime:
		l := math.Exp(-p.mean)
		var k int
		for prod := src.Float64(); prod > l && k < p.maxIter; prod *= src.Float64() {
			k++
		}
		return int64(k)
	}
	// Normal approximation. A draw more than ~7σ below the mean
	// would be negative; clamp to the support like the binomial
	// approximation does.
	x := math.Round(p.norm.sample(src))
	if x < 0 {
		return 0
	}
	return int64(x)
}

// SampleN draws n values.
func (p *Poisson) SampleN(src Source, n int) []int64 {
	return sampleN(p, src, n)
}
