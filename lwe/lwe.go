// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lwe implements a small Learning-With-Errors bit encryption
// scheme, the construction underlying lattice-based post-quantum
// cryptography. Parameters are classroom sized: correctness is only
// probabilistic, and decode failures are an expected outcome whenever the
// accumulated error crosses the q/4 decoding margin.
package lwe

import "errors"

// Common errors.
var (
	ErrInvalidParameters = errors.New("lwe: invalid parameters")
	ErrBitRange          = errors.New("lwe: message bit must be 0 or 1")
	ErrDecodeMismatch    = errors.New("lwe: decoded bit does not match")
)

// SecretKey is the secret vector s with entries in {-1, 0, 1}.
type SecretKey struct {
	S []int8
}

// PublicKey is the pair (A, b = A·s + e mod q).
type PublicKey struct {
	A [][]uint64
	B []uint64
}

// Ciphertext is the pair (u, v) encrypting one bit.
type Ciphertext struct {
	U []uint64
	V uint64
}
