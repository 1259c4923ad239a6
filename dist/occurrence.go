// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// An Occurrence restates a binomial distribution as queries about how
// many times an event with a fixed per-trial probability occurs in a
// run of trials. It is the full binomial contract plus the
// event-counting vocabulary.
type Occurrence struct {
	*Binomial
}

// NewOccurrence returns the occurrence distribution for an event with
// probability p observed over n trials.
func NewOccurrence(p float64, n int64) (*Occurrence, error) {
	b, err := NewBinomial(n, p)
	if err != nil {
		return nil, err
	}
	return &Occurrence{Binomial: b}, nil
}

// Exactly returns the probability of exactly k occurrences.
func (o *Occurrence) Exactly(k int64) float64 {
	return o.PMF(k)
}

// AtMost returns the probability of at most k occurrences.
func (o *Occurrence) AtMost(k int64) float64 {
	return o.CDF(k)
}

// AtLeast returns the probability of at least k occurrences. For any
// k, AtLeast(k) + AtMost(k-1) == 1.
func (o *Occurrence) AtLeast(k int64) float64 {
	return 1 - o.CDF(k-1)
}

// Between returns the probability of between j and k occurrences,
// inclusive on both ends. It fails if j > k.
func (o *Occurrence) Between(j, k int64) (float64, error) {
	if j > k {
		return 0, errInvertedRange(j, k)
	}
	return o.CDF(k) - o.CDF(j-1), nil
}
