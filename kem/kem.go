// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package kem implements a toy Kyber-like key encapsulation mechanism over
// module-LWE, with componentwise vector products standing in for the ring
// multiplications of the real scheme. Both sides derive the shared secret
// by hashing the embedded message bits with SHA3-256.
//
// Like every scheme in this module it is for teaching: parameters are
// small and the simplified algebra gives no security argument.
package kem

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// MessageBits is the number of message bits embedded in a ciphertext and
// hashed into the shared secret.
const MessageBits = 32

// ErrInvalidParameters reports an unusable parameter set.
var ErrInvalidParameters = errors.New("kem: invalid parameters")

// Parameters fixes the module rank k, the vector length n and the
// modulus q.
type Parameters struct {
	k int
	n int
	q uint64
}

// ParamsToy mirrors the original classroom demo: rank 2, length 128 and
// the Kyber modulus 3329.
var ParamsToy = Parameters{k: 2, n: 128, q: 3329}

// NewParameters validates and returns a parameter set. n must hold the
// embedded message and q must leave room for the ⌊q/2⌋ bit encoding above
// the small error terms.
func NewParameters(k, n int, q uint64) (Parameters, error) {
	switch {
	case k < 1:
		return Parameters{}, fmt.Errorf("%w: rank k=%d", ErrInvalidParameters, k)
	case n < MessageBits:
		return Parameters{}, fmt.Errorf("%w: length n=%d, need at least %d", ErrInvalidParameters, n, MessageBits)
	case q < 64:
		return Parameters{}, fmt.Errorf("%w: modulus q=%d", ErrInvalidParameters, q)
	}
	return Parameters{k: k, n: n, q: q}, nil
}

// K returns the module rank.
func (p Parameters) K() int { return p.k }

// N returns the vector length.
func (p Parameters) N() int { return p.n }

// Q returns the modulus.
func (p Parameters) Q() uint64 { return p.q }

// SecretKey holds the k small secret vectors.
type SecretKey struct {
	S [][]int8 // k × n, entries in [-2, 2]
}

// PublicKey holds the public matrix A and t = A∘s + e.
type PublicKey struct {
	A [][][]uint64 // k × k × n
	T [][]uint64   // k × n
}

// Ciphertext holds the encapsulation (u, v).
type Ciphertext struct {
	U [][]uint64 // k × n
	V []uint64   // n
}

// SharedSecret is the 32-byte key both sides derive.
type SharedSecret [32]byte

func deriveSecret(bits []uint8) SharedSecret {
	return sha3.Sum256(bits)
}
