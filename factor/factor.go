// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package factor implements the two classical factorization attacks used
// against the toy RSA moduli: trial division and Pollard's rho. Both run
// under explicit budgets and report their work (divisor checks or sequence
// iterations) together with wall-clock time, so demonstrations can compare
// attack cost against key generation cost.
package factor

import (
	"errors"
	"time"
)

// Common errors.
var (
	ErrNoFactor       = errors.New("factor: no factor found within budget")
	ErrInvalidModulus = errors.New("factor: modulus must be at least 2")
)

// Method identifies which algorithm produced a Result.
type Method uint8

const (
	MethodTrialDivision Method = iota
	MethodPollardRho
	MethodShorClassical
)

func (m Method) String() string {
	switch m {
	case MethodTrialDivision:
		return "trial-division"
	case MethodPollardRho:
		return "pollard-rho"
	case MethodShorClassical:
		return "shor-classical"
	default:
		return "unknown"
	}
}

// Result reports a factorization outcome. P and Q satisfy P*Q = N with
// P <= Q. Iterations counts divisor checks for trial division and sequence
// steps for Pollard's rho; it is filled in even when the search fails, so
// exhausted budgets still show up in cost comparisons.
type Result struct {
	P, Q       uint64
	Method     Method
	Iterations uint64
	Elapsed    time.Duration
}

func newResult(method Method, p, q, iters uint64, start time.Time) *Result {
	if p > q {
		p, q = q, p
	}
	return &Result{P: p, Q: q, Method: method, Iterations: iters, Elapsed: time.Since(start)}
}
