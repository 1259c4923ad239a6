// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// A Comparator compares floating point values up to an absolute
// tolerance Eps. Every validation and equality check in this package
// goes through a Comparator so that round-off accumulated by table
// derivations does not trip exact comparisons.
type Comparator struct {
	Eps float64
}

// Tol is the package-wide comparator. Its tolerance matches the 1e-9
// tail-mass target of effective ranges.
var Tol = Comparator{Eps: 1e-9}

// Eq reports whether a and b are equal within c.Eps.
func (c Comparator) Eq(a, b float64) bool {
	return math.Abs(a-b) <= c.Eps
}

// Lt reports whether a is less than b by more than c.Eps.
func (c Comparator) Lt(a, b float64) bool {
	return a < b && !c.Eq(a, b)
}

// Le reports whether a is less than or tolerantly equal to b.
func (c Comparator) Le(a, b float64) bool {
	return a < b || c.Eq(a, b)
}

// Gt reports whether a is greater than b by more than c.Eps.
func (c Comparator) Gt(a, b float64) bool {
	return a > b && !c.Eq(a, b)
}

// Ge reports whether a is greater than or tolerantly equal to b.
func (c Comparator) Ge(a, b float64) bool {
	return a > b || c.Eq(a, b)
}

// Sign returns 0 if x is within c.Eps of zero, and otherwise the sign
// of x as -1 or +1.
func (c Comparator) Sign(x float64) int {
	switch {
	case c.Eq(x, 0):
		return 0
	case x < 0:
		return -1
	}
	return 1
}

// NonDecreasing reports whether xs is monotonically non-decreasing,
// allowing backward steps of at most c.Eps.
func (c Comparator) NonDecreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if c.Lt(xs[i], xs[i-1]) {
			return false
		}
	}
	return true
}
