// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// An Empirical is a distribution inferred from a multiset of integer
// observations: the mass at k is the observed frequency of k. All
// queries are table-backed.
type Empirical struct {
	tableDist
}

// NewEmpirical builds the empirical distribution of obs. It fails if
// obs is empty.
func NewEmpirical(obs []int64) (*Empirical, error) {
	pmf, err := PMFFromObservations(obs)
	if err != nil {
		return nil, err
	}
	td, err := newTableDist(pmf)
	if err != nil {
		return nil, err
	}
	return &Empirical{tableDist: td}, nil
}

// Sample draws one value by inverse-transform lookup.
func (e *Empirical) Sample(src Source) int64 {
	return e.sample(src)
}

// SampleN draws n values.
func (e *Empirical) SampleN(src Source, n int) []int64 {
	return sampleN(e, src, n)
}
