// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package kem

import "github.com/qcrypto-edu/qday/sampling"

// Encapsulator produces shared secrets against a public key.
type Encapsulator struct {
	params Parameters
	pk     *PublicKey
	src    sampling.Source
}

// NewEncapsulator creates an encapsulator for the given public key.
func NewEncapsulator(params Parameters, pk *PublicKey, src sampling.Source) *Encapsulator {
	return &Encapsulator{params: params, pk: pk, src: src}
}

// Encapsulate draws MessageBits random bits, hides them in a perturbed
// combination of the public key (u = Aᵀ∘r + e₁, v = t∘r + e₂ + m·⌊q/2⌋)
// and returns the SHA3-derived shared secret with the ciphertext.
func (e *Encapsulator) Encapsulate() (SharedSecret, *Ciphertext) {
	k, n := e.params.k, e.params.n
	q := int64(e.params.q)

	m := make([]uint8, MessageBits)
	for i := range m {
		m[i] = uint8(e.src.Uint64n(2))
	}

	r := make([][]int64, k)
	for i := range r {
		r[i] = make([]int64, n)
		for j := range r[i] {
			r[i][j] = e.src.IntRange(-1, 1)
		}
	}

	u := make([][]uint64, k)
	for i := range u {
		u[i] = make([]uint64, n)
		for l := 0; l < n; l++ {
			acc := e.src.IntRange(-1, 1)
			for j := 0; j < k; j++ {
				acc += int64(e.pk.A[j][i][l]) * r[j][l]
			}
			u[i][l] = uint64((acc%q + q) % q)
		}
	}

	v := make([]uint64, n)
	for l := 0; l < n; l++ {
		acc := e.src.IntRange(-1, 1)
		for i := 0; i < k; i++ {
			acc += int64(e.pk.T[i][l]) * r[i][l]
		}
		if l < MessageBits && m[l] == 1 {
			acc += q / 2
		}
		v[l] = uint64((acc%q + q) % q)
	}

	return deriveSecret(m), &Ciphertext{U: u, V: v}
}

// Decapsulator recovers shared secrets with the secret key.
type Decapsulator struct {
	params Parameters
	sk     *SecretKey
}

// NewDecapsulator creates a decapsulator for the given secret key.
func NewDecapsulator(params Parameters, sk *SecretKey) *Decapsulator {
	return &Decapsulator{params: params, sk: sk}
}

// Decapsulate computes w = v − s∘u, decodes each embedded bit by rounding
// to the nearest multiple of ⌊q/2⌋ and rehashes the bits into the shared
// secret. When an error term overflows the q/4 margin the decoded bits,
// and therefore the secret, differ from the encapsulator's; callers must
// compare, not assume.
func (d *Decapsulator) Decapsulate(ct *Ciphertext) SharedSecret {
	k := d.params.k
	q := int64(d.params.q)

	m := make([]uint8, MessageBits)
	for l := 0; l < MessageBits; l++ {
		acc := int64(ct.V[l])
		for i := 0; i < k; i++ {
			acc -= int64(d.sk.S[i][l]) * int64(ct.U[i][l])
		}
		w := (acc%q + q) % q
		if w > q/4 && w < 3*q/4 {
			m[l] = 1
		}
	}

	return deriveSecret(m)
}
