// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"fmt"

	"github.com/qcrypto-edu/qday/sampling"
)

// FailureRate measures the empirical decode failure fraction: one keypair,
// then trials random bits encrypted and decrypted, counting mismatches.
// The rate is small for sane parameters but not zero; callers assert a
// threshold, never exact success.
func FailureRate(params Parameters, trials int, src sampling.Source) (float64, error) {
	if trials < 1 {
		return 0, fmt.Errorf("%w: trials=%d", ErrInvalidParameters, trials)
	}

	kg := NewKeyGenerator(params, src)
	sk := kg.GenSecretKey()
	pk := kg.GenPublicKey(sk)
	enc := NewEncryptor(params, pk, src)
	dec := NewDecryptor(params, sk)

	failures := 0
	for t := 0; t < trials; t++ {
		bit := int(src.Uint64n(2))
		ct, err := enc.Encrypt(bit)
		if err != nil {
			return 0, err
		}
		if dec.Decrypt(ct) != bit {
			failures++
		}
	}
	return float64(failures) / float64(trials), nil
}

// CheckRoundTrip encrypts bit and decrypts the result, reporting
// ErrDecodeMismatch when the error term overflowed the decoding margin.
// Callers treat the mismatch as an expected outcome and may simply retry.
func CheckRoundTrip(enc *Encryptor, dec *Decryptor, bit int) error {
	ct, err := enc.Encrypt(bit)
	if err != nil {
		return err
	}
	if got := dec.Decrypt(ct); got != bit {
		return fmt.Errorf("%w: sent %d, decoded %d", ErrDecodeMismatch, bit, got)
	}
	return nil
}
