// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package lwe

// Decryptor decrypts LWE ciphertexts with the secret vector.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor creates a decryptor for the given secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// Decrypt computes w = v - s·u mod q and rounds to the nearest multiple of
// ⌊q/2⌋: values inside (q/4, 3q/4) decode to 1, everything else to 0.
// Decoding is wrong whenever the accumulated error exceeds the q/4 margin,
// which is possible by design; see FailureRate.
func (dec *Decryptor) Decrypt(ct *Ciphertext) int {
	q := int64(dec.params.q)

	acc := int64(ct.V)
	for i := 0; i < dec.params.n; i++ {
		acc -= int64(dec.sk.S[i]) * int64(ct.U[i])
	}
	w := (acc%q + q) % q

	if w > q/4 && w < 3*q/4 {
		return 1
	}
	return 0
}
