// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(int64) float64, values map[int64]float64) {
	t.Helper()
	for x, want := range values {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%d) = %v, got %v", name, x, want, got)
		}
	}
}

// A seqSource replays fixed deviate sequences, cycling when
// exhausted. It makes strategy-dependent sampling paths
// deterministic.
type seqSource struct {
	uniforms []float64
	normals  []float64
	ints     []int64
	ui, ni, ii int
}

func (s *seqSource) Float64() float64 {
	v := s.uniforms[s.ui%len(s.uniforms)]
	s.ui++
	return v
}

func (s *seqSource) NormFloat64() float64 {
	v := s.normals[s.ni%len(s.normals)]
	s.ni++
	return v
}

func (s *seqSource) Int64N(n int64) int64 {
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}
