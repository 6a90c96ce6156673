// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package kem

import "github.com/qcrypto-edu/qday/sampling"

// KeyGenerator produces toy KEM keypairs.
type KeyGenerator struct {
	params Parameters
	src    sampling.Source
}

// NewKeyGenerator creates a key generator for the given parameters.
func NewKeyGenerator(params Parameters, src sampling.Source) *KeyGenerator {
	return &KeyGenerator{params: params, src: src}
}

// GenKeyPair draws the secret s (small coefficients), the uniform public
// matrix A and the error e, and publishes t = A∘s + e mod q, where ∘ is
// the componentwise product that stands in for ring multiplication.
func (kg *KeyGenerator) GenKeyPair() (*PublicKey, *SecretKey) {
	k, n := kg.params.k, kg.params.n
	q := int64(kg.params.q)

	s := make([][]int8, k)
	for i := range s {
		s[i] = make([]int8, n)
		for j := range s[i] {
			s[i][j] = int8(kg.src.IntRange(-2, 2))
		}
	}

	a := make([][][]uint64, k)
	for i := range a {
		a[i] = make([][]uint64, k)
		for j := range a[i] {
			a[i][j] = make([]uint64, n)
			for l := range a[i][j] {
				a[i][j][l] = kg.src.Uint64n(kg.params.q)
			}
		}
	}

	t := make([][]uint64, k)
	for i := range t {
		t[i] = make([]uint64, n)
		for l := 0; l < n; l++ {
			acc := kg.src.IntRange(-2, 2)
			for j := 0; j < k; j++ {
				acc += int64(a[i][j][l]) * int64(s[j][l])
			}
			t[i][l] = uint64((acc%q + q) % q)
		}
	}

	return &PublicKey{A: a, T: t}, &SecretKey{S: s}
}
