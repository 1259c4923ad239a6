// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
)

// A DiscreteDist is a probability distribution over integers. All
// implementations in this package are immutable after construction
// and safe for concurrent readers.
//
// Support is the exact range of non-zero mass and may be unbounded
// above (Poisson). EffectiveRange is always finite: it is the
// smallest convenient interval guaranteed to omit no more than 1e-9
// of total probability mass, and is what caching, display, and
// testing tabulate over.
type DiscreteDist interface {
	// PMF returns P(X = k). It is 0 outside the support.
	PMF(k int64) float64

	// CDF returns P(X <= k).
	CDF(k int64) float64

	// CDFBetween returns the half-open range probability
	// P(j < X <= k). It fails if j > k.
	CDFBetween(j, k int64) (float64, error)

	Mean() float64
	Median() float64
	Variance() float64
	StdDev() float64

	Support() Interval
	EffectiveRange() Interval

	// Sample draws one value from the distribution using src.
	Sample(src Source) int64

	// SampleN draws n values from the distribution using src.
	SampleN(src Source, n int) []int64
}

// DefaultEffectiveRange is the generic effective-range rule: the mean
// plus or minus seven standard deviations, clipped to the true
// support. Distributions with heavier tabulation needs (Binomial,
// Poisson) override it with hand-tuned rules.
func DefaultEffectiveRange(d DiscreteDist) Interval {
	mean, sd := d.Mean(), d.StdDev()
	lo := int64(math.Floor(mean - 7*sd))
	hi := int64(math.Ceil(mean + 7*sd))
	return clipToSupport(Interval{Lo: lo, Hi: hi}, d.Support())
}

// clipToSupport intersects iv with sup, collapsing to a single point
// at the nearer support bound if the two do not overlap.
func clipToSupport(iv, sup Interval) Interval {
	if iv.Lo < sup.Lo {
		iv.Lo = sup.Lo
	}
	if iv.Hi > sup.Hi {
		iv.Hi = sup.Hi
	}
	if iv.Hi < iv.Lo {
		iv.Hi = iv.Lo
	}
	return iv
}

func errInvertedRange(j, k int64) error {
	return errors.Newf("inverted range (%d, %d]", j, k)
}

// cdfBetween implements CDFBetween in terms of CDF for distributions
// without a cheaper range form.
func cdfBetween(d DiscreteDist, j, k int64) (float64, error) {
	if j > k {
		return 0, errInvertedRange(j, k)
	}
	return d.CDF(k) - d.CDF(j), nil
}

// sampleN implements SampleN by repeated single draws.
func sampleN(d DiscreteDist, src Source, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = d.Sample(src)
	}
	return out
}

// A tableCell lazily derives and memoizes a distribution's cached
// PMF/CDF pair. It exists for moment queries that have no closed
// form: the first accessor pays for the tabulation, later accessors
// reuse it. The sync.Once makes the initialize-once discipline
// explicit so a distribution can be shared across goroutines.
type tableCell struct {
	once sync.Once
	pmf  *DiscretePMF
	cdf  *DiscreteCDF
	err  error
}

func (tc *tableCell) tables(d DiscreteDist) (*DiscretePMF, *DiscreteCDF, error) {
	tc.once.Do(func() {
		tc.pmf, tc.err = PMFFromDist(d)
		if tc.err != nil {
			return
		}
		tc.cdf, tc.err = tc.pmf.CDF()
	})
	return tc.pmf, tc.cdf, tc.err
}
