// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math/rand/v2"

// A Source supplies the uniform and Gaussian deviates consumed by
// sampling. The catalog depends only on this capability, never on a
// particular generator or a process-wide instance; callers inject a
// Source at each sampling call site. *math/rand/v2.Rand satisfies
// Source.
type Source interface {
	// Float64 returns a uniform deviate in [0, 1).
	Float64() float64

	// NormFloat64 returns a standard normal deviate.
	NormFloat64() float64

	// Int64N returns a uniform integer in [0, n). It panics if
	// n <= 0.
	Int64N(n int64) int64
}

var _ Source = (*rand.Rand)(nil)

// NewSource returns a deterministic Source seeded from seed, suitable
// for reproducible simulations and tests.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}
