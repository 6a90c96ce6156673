// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package factor

import (
	"fmt"
	"time"

	"github.com/qcrypto-edu/qday/internal/arith"
)

// TrialDivision factors n by checking 2 and then every odd candidate up to
// bound. A bound of 0 means ⌊√n⌋, which is exhaustive: ErrNoFactor with the
// default bound proves n prime. With a smaller bound only candidates at or
// below it are tested, and ErrNoFactor means no factor among them.
//
// On ErrNoFactor the returned Result still carries the number of divisor
// checks and the elapsed time.
func TrialDivision(n, bound uint64) (*Result, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidModulus, n)
	}

	start := time.Now()
	limit := bound
	if limit == 0 {
		limit = arith.SqrtFloor(n)
	}

	var checks uint64
	if limit >= 2 {
		checks++
		if n%2 == 0 {
			return newResult(MethodTrialDivision, 2, n/2, checks, start), nil
		}
	}
	for i := uint64(3); i <= limit; i += 2 {
		checks++
		if n%i == 0 {
			return newResult(MethodTrialDivision, i, n/i, checks, start), nil
		}
	}

	res := newResult(MethodTrialDivision, 0, 0, checks, start)
	return res, fmt.Errorf("%w: %d divisor checks up to %d", ErrNoFactor, checks, limit)
}
