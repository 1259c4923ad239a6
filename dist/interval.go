// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"iter"
	"math"

	"github.com/cockroachdb/errors"
)

// MaxSupport marks the upper bound of an interval that extends to
// +infinity, such as the support of a Poisson distribution.
const MaxSupport = math.MaxInt64

// An Interval is a closed integer range [Lo, Hi]. Intervals are value
// types and are never mutated after construction; two intervals are
// equal exactly when their bounds are equal (==).
type Interval struct {
	Lo, Hi int64
}

// NewInterval returns the interval [lo, hi]. It fails if hi < lo.
func NewInterval(lo, hi int64) (Interval, error) {
	if hi < lo {
		return Interval{}, errors.Newf("inverted interval bounds [%d, %d]", lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Bounded reports whether the interval has a finite upper bound.
func (iv Interval) Bounded() bool {
	return iv.Hi != MaxSupport
}

// Size returns the number of integers in the interval. It is only
// meaningful for bounded intervals.
func (iv Interval) Size() int64 {
	return iv.Hi - iv.Lo + 1
}

// Contains reports whether k lies in [Lo, Hi].
func (iv Interval) Contains(k int64) bool {
	return iv.Lo <= k && k <= iv.Hi
}

// ContainsFloat reports whether x lies in [Lo, Hi], tolerating
// floating point round-off at the boundaries. It is used to test
// whether a continuous approximation's working window fits inside a
// discrete support.
func (iv Interval) ContainsFloat(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if !Tol.Ge(x, float64(iv.Lo)) {
		return false
	}
	return !iv.Bounded() || Tol.Le(x, float64(iv.Hi))
}

// Shift returns the interval translated by delta.
func (iv Interval) Shift(delta int64) Interval {
	return Interval{Lo: iv.Lo + delta, Hi: iv.Hi + delta}
}

// All returns an iterator over Lo, Lo+1, ..., Hi in ascending order.
// The sequence is restartable.
func (iv Interval) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		// Stepping by increment would overflow at Hi = MaxSupport,
		// so the loop tests before advancing.
		for k := iv.Lo; ; k++ {
			if !yield(k) || k == iv.Hi {
				return
			}
		}
	}
}

func (iv Interval) String() string {
	if !iv.Bounded() {
		return fmt.Sprintf("[%d, +inf)", iv.Lo)
	}
	return fmt.Sprintf("[%d, %d]", iv.Lo, iv.Hi)
}
