// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomialValidation(t *testing.T) {
	_, err := NewBinomial(-1, 0.5)
	assert.Error(t, err, "negative trial count must fail")
	_, err = NewBinomial(10, -0.1)
	assert.Error(t, err)
	_, err = NewBinomial(10, 1.1)
	assert.Error(t, err)
	_, err = NewBinomial(10, math.NaN())
	assert.Error(t, err)

	_, err = NewBinomial(0, 0.5)
	assert.NoError(t, err, "zero trials is a valid point mass at 0")
}

func TestBinomialPMF(t *testing.T) {
	b, err := NewBinomial(5, 0.2)
	require.NoError(t, err)
	testFunc(t, fmt.Sprintf("Binomial(%d, %v).PMF", b.N(), b.P()), b.PMF,
		map[int64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(0.2, 5),
			6:     0,
			1000:  0,
		})
}

func TestBinomialPMFEdgeProbabilities(t *testing.T) {
	b, err := NewBinomial(4, 0)
	require.NoError(t, err)
	testFunc(t, "Binomial(4, 0).PMF", b.PMF, map[int64]float64{0: 1, 1: 0, 4: 0})

	b, err = NewBinomial(4, 1)
	require.NoError(t, err)
	testFunc(t, "Binomial(4, 1).PMF", b.PMF, map[int64]float64{0: 0, 3: 0, 4: 1})
}

func TestBinomialPMFMatchesOracle(t *testing.T) {
	b, err := NewBinomial(30, 0.3)
	require.NoError(t, err)
	oracle := distuv.Binomial{N: 30, P: 0.3}
	for k := int64(0); k <= 30; k++ {
		assert.InDelta(t, oracle.Prob(float64(k)), b.PMF(k), 1e-13, "k=%d", k)
	}
}

func TestBinomialCDF(t *testing.T) {
	b, err := NewBinomial(20, 0.35)
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.CDF(-1))
	assert.Equal(t, 1.0, b.CDF(20))
	assert.Equal(t, 1.0, b.CDF(1000))

	// The incomplete-beta CDF must agree with summed PMF values.
	sum := 0.0
	for k := int64(0); k <= 19; k++ {
		sum += b.PMF(k)
		assert.InDelta(t, sum, b.CDF(k), 1e-10, "k=%d", k)
	}

	v, err := b.CDFBetween(3, 8)
	require.NoError(t, err)
	assert.InDelta(t, b.CDF(8)-b.CDF(3), v, 1e-15)
	_, err = b.CDFBetween(8, 3)
	assert.Error(t, err)
}

func TestBinomialMoments(t *testing.T) {
	b, err := NewBinomial(100, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 30.0, b.Mean())
	assert.InDelta(t, 21.0, b.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(21), b.StdDev(), 1e-12)
	assert.Equal(t, Interval{Lo: 0, Hi: 100}, b.Support())
}

func TestBinomialMedian(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		p    float64
		want float64
	}{
		{30, 0.5, 15},   // integral mean
		{10, 0.3, 3},    // integral mean
		{5, 0.5, 2.5},   // p = 1/2 keeps the half-integral mean
		{7, 0.2, 1},     // skewed: round(1.4)
		{7, 0.9, 6},     // skewed: round(6.3)
		{7, 0.4, 2.5},   // inside (1-ln2, ln2]: midpoint of 2 and 3
	} {
		b, err := NewBinomial(tc.n, tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, b.Median(), "Binomial(%d, %v)", tc.n, tc.p)
	}
}

// TestBinomialStrategySelection pins the exact/approximate decision
// table: small trial counts always simulate exactly, and larger ones
// approximate only when the ±4σ window fits inside [0, n].
func TestBinomialStrategySelection(t *testing.T) {
	for _, tc := range []struct {
		n          int64
		p          float64
		wantApprox bool
	}{
		{0, 0.5, false},
		{1, 0.5, false},
		{5, 0.5, false},
		{10, 0.1, false},
		{10, 0.5, false},
		{30, 0.5, true},
		{30, 0.9, false},
		{95, 0.25, true},
		{95, 0.60, true},
	} {
		assert.Equal(t, tc.wantApprox, binomialUseApprox(tc.n, tc.p),
			"useApprox(%d, %v)", tc.n, tc.p)
	}
}

// TestBinomialEffectiveRangeMass checks the ±12σ window retains at
// least 1 - 1e-9 of total mass across the parameter grid.
func TestBinomialEffectiveRangeMass(t *testing.T) {
	for _, n := range []int64{0, 1, 10, 100, 1000} {
		for _, p := range []float64{0.02, 0.2, 0.5, 0.8, 0.98} {
			b, err := NewBinomial(n, p)
			require.NoError(t, err)
			r := b.EffectiveRange()
			mass := b.CDF(r.Hi) - b.CDF(r.Lo-1)
			assert.GreaterOrEqual(t, mass, 1-1e-9, "Binomial(%d, %v) range %s", n, p, r)
		}
	}
}

func TestBinomialExactSampling(t *testing.T) {
	b, err := NewBinomial(20, 0.3)
	require.NoError(t, err)
	require.Equal(t, binomialExact, b.variant)

	// Deterministic trials: uniforms below p succeed.
	src := &seqSource{uniforms: []float64{0.1, 0.9}} // success, failure, ...
	assert.Equal(t, int64(10), b.Sample(src))

	src2 := NewSource(11)
	samples := b.SampleN(src2, 50000)
	mean := 0.0
	for _, s := range samples {
		require.True(t, b.Support().Contains(s))
		mean += float64(s)
	}
	mean /= float64(len(samples))
	assert.InDelta(t, b.Mean(), mean, 0.1)
}

func TestBinomialApproxSampling(t *testing.T) {
	b, err := NewBinomial(95, 0.25)
	require.NoError(t, err)
	require.Equal(t, binomialApprox, b.variant)

	// Extreme Gaussian deviates must clamp to the support.
	assert.Equal(t, int64(0), b.Sample(&seqSource{normals: []float64{-100}}))
	assert.Equal(t, int64(95), b.Sample(&seqSource{normals: []float64{100}}))
	assert.Equal(t, int64(24), b.Sample(&seqSource{normals: []float64{0}})) // round(23.75)

	src := NewSource(13)
	samples := b.SampleN(src, 50000)
	mean := 0.0
	for _, s := range samples {
		require.True(t, b.Support().Contains(s))
		mean += float64(s)
	}
	mean /= float64(len(samples))
	assert.InDelta(t, b.Mean(), mean, 0.15)
}
