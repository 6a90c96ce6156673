// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import "github.com/qcrypto-edu/qday/sampling"

// KeyGenerator produces LWE keypairs.
type KeyGenerator struct {
	params Parameters
	src    sampling.Source
}

// NewKeyGenerator creates a key generator for the given parameters.
func NewKeyGenerator(params Parameters, src sampling.Source) *KeyGenerator {
	return &KeyGenerator{params: params, src: src}
}

// GenSecretKey draws a secret vector with entries in {-1, 0, 1}.
func (kg *KeyGenerator) GenSecretKey() *SecretKey {
	s := make([]int8, kg.params.n)
	for i := range s {
		s[i] = int8(kg.src.IntRange(-1, 1))
	}
	return &SecretKey{S: s}
}

// GenPublicKey draws a uniform matrix A and returns (A, b = A·s + e mod q)
// with e uniform in [-errBound, errBound].
func (kg *KeyGenerator) GenPublicKey(sk *SecretKey) *PublicKey {
	n := kg.params.n
	q := int64(kg.params.q)

	a := make([][]uint64, n)
	for i := range a {
		a[i] = make([]uint64, n)
		for j := range a[i] {
			a[i][j] = kg.src.Uint64n(kg.params.q)
		}
	}

	b := make([]uint64, n)
	for i := 0; i < n; i++ {
		acc := kg.src.IntRange(-kg.params.errBound, kg.params.errBound)
		for j := 0; j < n; j++ {
			acc += int64(a[i][j]) * int64(sk.S[j])
		}
		b[i] = uint64((acc%q + q) % q)
	}

	return &PublicKey{A: a, B: b}
}
