// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "testing"

func TestIntervalConstruction(t *testing.T) {
	iv, err := NewInterval(-3, 4)
	if err != nil {
		t.Fatalf("NewInterval(-3, 4): %v", err)
	}
	if iv.Lo != -3 || iv.Hi != 4 {
		t.Errorf("want [-3, 4], got %s", iv)
	}
	if _, err := NewInterval(5, 4); err == nil {
		t.Errorf("want error for inverted bounds [5, 4]")
	}
	if _, err := NewInterval(5, 5); err != nil {
		t.Errorf("single-point interval must be valid: %v", err)
	}
}

func TestIntervalSizeAndIteration(t *testing.T) {
	for _, bounds := range [][2]int64{{0, 0}, {-2, 3}, {10, 14}} {
		iv, err := NewInterval(bounds[0], bounds[1])
		if err != nil {
			t.Fatal(err)
		}
		if want := bounds[1] - bounds[0] + 1; iv.Size() != want {
			t.Errorf("want %s.Size() = %d, got %d", iv, want, iv.Size())
		}
		// Iterate twice: the sequence must be restartable and
		// ascending.
		for range 2 {
			var n int64
			next := iv.Lo
			for k := range iv.All() {
				if k != next {
					t.Fatalf("want %d at position %d of %s", next, n, iv)
				}
				next++
				n++
			}
			if n != iv.Size() {
				t.Errorf("want %d iterated values for %s, got %d", iv.Size(), iv, n)
			}
		}
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Lo: 0, Hi: 5}
	for k, want := range map[int64]bool{-1: false, 0: true, 3: true, 5: true, 6: false} {
		if got := iv.Contains(k); got != want {
			t.Errorf("want %s.Contains(%d) = %v", iv, k, want)
		}
	}
}

func TestIntervalContainsFloat(t *testing.T) {
	iv := Interval{Lo: 0, Hi: 5}
	for x, want := range map[float64]bool{
		-0.5:       false,
		-1e-10:     true, // round-off below the lower bound
		0:          true,
		4.9:        true,
		5 + 1e-10:  true, // round-off above the upper bound
		5.1:        false,
	} {
		if got := iv.ContainsFloat(x); got != want {
			t.Errorf("want %s.ContainsFloat(%v) = %v", iv, x, want)
		}
	}
	if iv.ContainsFloat(nan) {
		t.Errorf("NaN must not be contained")
	}

	open := Interval{Lo: 0, Hi: MaxSupport}
	if !open.ContainsFloat(1e30) {
		t.Errorf("unbounded interval must contain any value above its lower bound")
	}
	if open.ContainsFloat(-1) {
		t.Errorf("unbounded interval must still enforce its lower bound")
	}
}

func TestIntervalShift(t *testing.T) {
	iv := Interval{Lo: 1, Hi: 4}
	if got := iv.Shift(-3); got != (Interval{Lo: -2, Hi: 1}) {
		t.Errorf("want [-2, 1], got %s", got)
	}
	if got := iv.Shift(0); got != iv {
		t.Errorf("zero shift must be the identity")
	}
}
