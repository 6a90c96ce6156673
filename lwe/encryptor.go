// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"fmt"

	"github.com/qcrypto-edu/qday/sampling"
)

// Encryptor encrypts single bits under an LWE public key.
type Encryptor struct {
	params Parameters
	pk     *PublicKey
	src    sampling.Source
}

// NewEncryptor creates an encryptor for the given public key.
func NewEncryptor(params Parameters, pk *PublicKey, src sampling.Source) *Encryptor {
	return &Encryptor{params: params, pk: pk, src: src}
}

// Encrypt encodes bit into a perturbed combination of public-key rows:
// a fresh binary vector r selects rows, u = Aᵀ·r + e₁ and
// v = b·r + e₂ + bit·⌊q/2⌋, everything mod q. The fresh error terms e₁, e₂
// are uniform in {-1, 0, 1}.
func (enc *Encryptor) Encrypt(bit int) (*Ciphertext, error) {
	if bit != 0 && bit != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBitRange, bit)
	}

	n := enc.params.n
	q := int64(enc.params.q)

	r := make([]int64, n)
	for i := range r {
		r[i] = int64(enc.src.Uint64n(2))
	}

	u := make([]uint64, n)
	for j := 0; j < n; j++ {
		acc := enc.src.IntRange(-1, 1)
		for i := 0; i < n; i++ {
			if r[i] != 0 {
				acc += int64(enc.pk.A[i][j])
			}
		}
		u[j] = uint64((acc%q + q) % q)
	}

	acc := enc.src.IntRange(-1, 1) + int64(bit)*(q/2)
	for i := 0; i < n; i++ {
		if r[i] != 0 {
			acc += int64(enc.pk.B[i])
		}
	}
	v := uint64((acc%q + q) % q)

	return &Ciphertext{U: u, V: v}, nil
}
