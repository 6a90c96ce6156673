// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package factor

import (
	"fmt"
	"time"

	"github.com/qcrypto-edu/qday/internal/arith"
	"github.com/qcrypto-edu/qday/sampling"
)

// DefaultMaxIterations bounds a single rho run when Config.MaxIterations
// is zero. Expected work for a semiprime n is on the order of n^(1/4), so
// 2^20 comfortably covers every modulus the toy key generator can emit.
const DefaultMaxIterations = 1 << 20

// Config controls a Pollard rho run. The zero value draws the polynomial
// constant and starting point from a fresh random source and applies
// DefaultMaxIterations.
type Config struct {
	// C is the constant in x² + c mod n. 0 means draw from Source.
	C uint64
	// X0 is the starting point. 0 means draw from Source.
	X0 uint64
	// MaxIterations is the explicit iteration budget. 0 means
	// DefaultMaxIterations.
	MaxIterations uint64
	// Source supplies randomness. nil means a fresh entropy-keyed source.
	Source sampling.Source
}

// PollardRho factors n with the x² + c pseudo-random sequence and Floyd
// cycle detection. It fails with ErrNoFactor when the budget runs out or
// the chosen c yields a degenerate cycle; callers retry with a new c.
//
// On ErrNoFactor the returned Result still carries the iteration count and
// elapsed time.
func PollardRho(n uint64, cfg Config) (*Result, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidModulus, n)
	}

	start := time.Now()
	if n%2 == 0 {
		return newResult(MethodPollardRho, 2, n/2, 1, start), nil
	}

	src := cfg.Source
	if src == nil {
		var err error
		if src, err = sampling.New(); err != nil {
			return nil, err
		}
	}
	budget := cfg.MaxIterations
	if budget == 0 {
		budget = DefaultMaxIterations
	}
	c := cfg.C
	if c == 0 {
		c = 1 + src.Uint64n(n-1)
	}
	x := cfg.X0
	if x == 0 {
		x = 2 + src.Uint64n(n-2)
	}

	f := func(v uint64) uint64 {
		return (arith.MulMod(v, v, n) + c) % n
	}

	y := x
	var iters uint64
	for iters < budget {
		iters++
		x = f(x)
		y = f(f(y))
		diff := x - y
		if x < y {
			diff = y - x
		}
		if diff == 0 {
			// The tortoise caught the hare: degenerate cycle for this c.
			break
		}
		if d := arith.GCD(diff, n); d != 1 {
			if d == n {
				break
			}
			return newResult(MethodPollardRho, d, n/d, iters, start), nil
		}
	}

	res := newResult(MethodPollardRho, 0, 0, iters, start)
	return res, fmt.Errorf("%w: %d iterations with c=%d", ErrNoFactor, iters, c)
}
