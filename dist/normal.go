// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// normalDist is the matched-moment normal collaborator used by the
// approximation strategies. Sampling draws the Gaussian deviate from
// the injected Source and scales it to the matched moments.
type normalDist struct {
	mu, sigma float64
}

func (n normalDist) sample(src Source) float64 {
	return n.mu + n.sigma*src.NormFloat64()
}
