// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shor simulates the classical skeleton of Shor's factorization
// algorithm: pick a random base, find the multiplicative order r of the
// base mod N, and when r is even derive factors from gcd(a^(r/2) ± 1, N).
//
// The order-finding step is done by brute force, which is exactly the part
// a quantum computer replaces with a polynomial-time period search. The
// demos use the measured order-finding cost to show where the quantum
// speedup lands.
package shor

import (
	"errors"
	"fmt"
	"time"

	"github.com/qcrypto-edu/qday/factor"
	"github.com/qcrypto-edu/qday/internal/arith"
	"github.com/qcrypto-edu/qday/sampling"
)

// Common errors.
var (
	ErrNotCoprime    = errors.New("shor: base shares a factor with the modulus")
	ErrOrderNotFound = errors.New("shor: order not found within budget")
)

// DefaultOrderBudget bounds a single order search when Config.OrderBudget
// is zero. The order divides λ(N) < N, so this covers every modulus the
// toy key generator emits.
const DefaultOrderBudget = 1 << 22

// DefaultAttempts is the number of random bases tried when
// Config.Attempts is zero.
const DefaultAttempts = 16

// FindOrder returns the smallest r with a^r ≡ 1 (mod n), counting upward
// one multiplication at a time. It requires gcd(a, n) = 1 and fails with
// ErrOrderNotFound once r would exceed budget.
func FindOrder(a, n, budget uint64) (uint64, error) {
	if n < 2 || a < 2 || a >= n {
		return 0, fmt.Errorf("shor: need 2 <= a < n, got a=%d n=%d", a, n)
	}
	if arith.GCD(a, n) != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) > 1", ErrNotCoprime, a, n)
	}

	cur := a % n
	r := uint64(1)
	for cur != 1 {
		cur = arith.MulMod(cur, a, n)
		r++
		if r > budget {
			return 0, fmt.Errorf("%w: a=%d n=%d budget=%d", ErrOrderNotFound, a, n, budget)
		}
	}
	return r, nil
}

// Config controls a simulated Shor run. The zero value uses
// DefaultAttempts, DefaultOrderBudget and a fresh random source.
type Config struct {
	// Attempts is how many random bases to try before giving up.
	Attempts int
	// OrderBudget bounds each order search.
	OrderBudget uint64
	// Source supplies the random bases.
	Source sampling.Source
}

// Factor runs the classical Shor simulation against n. The returned
// Result counts every modular multiplication spent in order finding, so
// the cost is comparable with the classical attacks in package factor.
// It fails with factor.ErrNoFactor once the attempt budget is exhausted,
// which is the certain outcome for prime n; the Result still carries the
// work counters on that path.
func Factor(n uint64, cfg Config) (*factor.Result, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", factor.ErrInvalidModulus, n)
	}

	start := time.Now()
	if n%2 == 0 {
		return resultOf(2, n, 1, start), nil
	}
	if n == 3 {
		// No base satisfies 2 <= a <= n-2, and 3 is prime anyway.
		return failure(0, start), fmt.Errorf("%w: no usable base against %d", factor.ErrNoFactor, n)
	}

	src := cfg.Source
	if src == nil {
		var err error
		if src, err = sampling.New(); err != nil {
			return nil, err
		}
	}
	attempts := cfg.Attempts
	if attempts == 0 {
		attempts = DefaultAttempts
	}
	budget := cfg.OrderBudget
	if budget == 0 {
		budget = DefaultOrderBudget
	}

	var work uint64
	for i := 0; i < attempts; i++ {
		a := 2 + src.Uint64n(n-3) // uniform in [2, n-2]

		// Lucky case: the random base already shares a factor with n.
		if g := arith.GCD(a, n); g > 1 {
			work++
			return resultOf(g, n, work, start), nil
		}

		r, err := FindOrder(a, n, budget)
		if err != nil {
			work += budget
			continue
		}
		work += r

		if r%2 != 0 {
			continue
		}
		h := arith.ModExp(a, r/2, n)
		if h == n-1 {
			// a^(r/2) ≡ -1: this base reveals nothing.
			continue
		}
		if g := arith.GCD(h-1, n); g > 1 && g < n {
			return resultOf(g, n, work, start), nil
		}
		if g := arith.GCD(h+1, n); g > 1 && g < n {
			return resultOf(g, n, work, start), nil
		}
	}

	return failure(work, start), fmt.Errorf("%w: %d bases tried against %d", factor.ErrNoFactor, attempts, n)
}

// failure reports the work spent on an unsuccessful run, so exhausted
// budgets still show up in cost comparisons.
func failure(iters uint64, start time.Time) *factor.Result {
	return &factor.Result{
		Method:     factor.MethodShorClassical,
		Iterations: iters,
		Elapsed:    time.Since(start),
	}
}

func resultOf(p, n, iters uint64, start time.Time) *factor.Result {
	q := n / p
	if p > q {
		p, q = q, p
	}
	return &factor.Result{
		P:          p,
		Q:          q,
		Method:     factor.MethodShorClassical,
		Iterations: iters,
		Elapsed:    time.Since(start),
	}
}
