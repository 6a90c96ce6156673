// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import "fmt"

// Parameters fixes the scheme dimensions: secret dimension n, modulus q
// and the key-generation error bound (errors are uniform in
// [-errBound, errBound]).
type Parameters struct {
	n        int
	q        uint64
	errBound int64
}

// Classroom parameter sets.
var (
	// Params16 is the smallest demonstration set: decoding succeeds almost
	// always, and a single trial runs instantly.
	Params16 = Parameters{n: 16, q: 251, errBound: 2}

	// Params64 matches the benchmark dimensions of the original classroom
	// demo; occasional decode failures become observable at this size.
	Params64 = Parameters{n: 64, q: 251, errBound: 2}
)

// NewParameters validates and returns a parameter set. The error bound
// must stay well inside the q/4 decoding margin; a bound of q/8 or more is
// rejected as it makes single-term errors able to flip the decoder.
func NewParameters(n int, q uint64, errBound int64) (Parameters, error) {
	switch {
	case n < 1:
		return Parameters{}, fmt.Errorf("%w: dimension n=%d", ErrInvalidParameters, n)
	case q < 8:
		return Parameters{}, fmt.Errorf("%w: modulus q=%d", ErrInvalidParameters, q)
	case errBound < 0 || uint64(errBound) >= q/8:
		return Parameters{}, fmt.Errorf("%w: error bound %d for q=%d", ErrInvalidParameters, errBound, q)
	}
	return Parameters{n: n, q: q, errBound: errBound}, nil
}

// N returns the secret dimension.
func (p Parameters) N() int { return p.n }

// Q returns the ciphertext modulus.
func (p Parameters) Q() uint64 { return p.q }

// ErrBound returns the key-generation error bound.
func (p Parameters) ErrBound() int64 { return p.errBound }
