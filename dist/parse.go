// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse builds a distribution from a textual descriptor of the form
// "TYPE; param1, param2, ...". Recognized descriptors:
//
//	binomial; N, P
//	poisson; MEAN
//	uniform; LO, HI
//	occurrence; P, N
//	empirical; OBS1, OBS2, ...
//
// Type names are case-insensitive and whitespace around tokens is
// ignored.
func Parse(s string) (DiscreteDist, error) {
	name, rest, _ := strings.Cut(s, ";")
	name = strings.ToLower(strings.TrimSpace(name))
	params, err := parseParams(rest)
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %q", s)
	}
	switch name {
	case "binomial":
		if err := wantParams(name, params, 2); err != nil {
			return nil, err
		}
		n, err := intParam(name, "trial count", params[0])
		if err != nil {
			return nil, err
		}
		return NewBinomial(n, params[1])
	case "poisson":
		if err := wantParams(name, params, 1); err != nil {
			return nil, err
		}
		return NewPoisson(params[0])
	case "uniform":
		if err := wantParams(name, params, 2); err != nil {
			return nil, err
		}
		lo, err := intParam(name, "lower bound", params[0])
		if err != nil {
			return nil, err
		}
		hi, err := intParam(name, "upper bound", params[1])
		if err != nil {
			return nil, err
		}
		return NewUniform(lo, hi)
	case "occurrence":
		if err := wantParams(name, params, 2); err != nil {
			return nil, err
		}
		n, err := intParam(name, "trial count", params[1])
		if err != nil {
			return nil, err
		}
		return NewOccurrence(params[0], n)
	case "empirical":
		obs := make([]int64, len(params))
		for i, p := range params {
			o, err := intParam(name, "observation", p)
			if err != nil {
				return nil, err
			}
			obs[i] = o
		}
		return NewEmpirical(obs)
	}
	return nil, errors.Newf("unknown distribution type %q", name)
}

func parseParams(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	params := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d", i+1)
		}
		params[i] = v
	}
	return params, nil
}

func wantParams(name string, params []float64, n int) error {
	if len(params) != n {
		return errors.Newf("%s takes %d parameters, got %d", name, n, len(params))
	}
	return nil
}

func intParam(name, what string, v float64) (int64, error) {
	if v != math.Trunc(v) {
		return 0, errors.Newf("%s %s must be an integer, got %v", name, what, v)
	}
	return int64(v), nil
}
