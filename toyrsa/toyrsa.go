// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package toyrsa implements textbook RSA over deliberately small primes,
// for demonstrating the cost asymmetry between key generation and
// factorization. It is insecure by construction: primes are tiny, there is
// no padding, and modular exponentiation is not constant time.
package toyrsa

import "errors"

// Prime bit lengths accepted by the key generator. The lower bound is the
// smallest range [2^(b-1), 2^b-1] holding two distinct odd primes; the
// upper bound keeps N below 2^60 so uint64 modular arithmetic stays exact.
const (
	MinBits = 3
	MaxBits = 30
)

// Common errors.
var (
	ErrInvalidBitLength = errors.New("toyrsa: prime bit length out of range")
	ErrMessageRange     = errors.New("toyrsa: message must be in [0, N)")
	ErrCiphertextRange  = errors.New("toyrsa: ciphertext must be in [0, N)")
)

// PublicKey is the encryption half of a keypair.
type PublicKey struct {
	N uint64 // modulus p*q
	E uint64 // public exponent, coprime to φ(N)
}

// PrivateKey is the decryption half of a keypair.
type PrivateKey struct {
	N uint64
	D uint64 // e⁻¹ mod φ(N)
}

// KeyPair bundles both halves together with the generating primes. A real
// key would never expose P, Q or Phi; they are retained here so the
// factorization demos can check their recovered factors.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
	P, Q    uint64
	Phi     uint64
}
