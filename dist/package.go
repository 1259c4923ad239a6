// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides a catalog of discrete probability distributions
// over contiguous integer supports, together with the tabulated PMF/CDF
// machinery used to evaluate, invert, sample, and cache them.
package dist // import "github.com/statforge/probdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
