// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package toyrsa

import (
	"fmt"

	"github.com/qcrypto-edu/qday/internal/arith"
)

// Encryptor encrypts integers under a public key.
type Encryptor struct {
	pk PublicKey
}

// NewEncryptor creates an encryptor for the given public key.
func NewEncryptor(pk PublicKey) *Encryptor {
	return &Encryptor{pk: pk}
}

// Encrypt returns m^e mod N for 0 <= m < N.
func (enc *Encryptor) Encrypt(m uint64) (uint64, error) {
	if m >= enc.pk.N {
		return 0, fmt.Errorf("%w: m=%d, N=%d", ErrMessageRange, m, enc.pk.N)
	}
	return arith.ModExp(m, enc.pk.E, enc.pk.N), nil
}

// EncryptBytes encrypts a byte string one byte per ciphertext, the way the
// classroom demo encrypts short ASCII messages. Every byte value must be
// below N.
func (enc *Encryptor) EncryptBytes(msg []byte) ([]uint64, error) {
	cts := make([]uint64, len(msg))
	for i, b := range msg {
		ct, err := enc.Encrypt(uint64(b))
		if err != nil {
			return nil, fmt.Errorf("byte %d: %w", i, err)
		}
		cts[i] = ct
	}
	return cts, nil
}

// Decryptor decrypts integers under a private key.
type Decryptor struct {
	sk PrivateKey
}

// NewDecryptor creates a decryptor for the given private key.
func NewDecryptor(sk PrivateKey) *Decryptor {
	return &Decryptor{sk: sk}
}

// Decrypt returns c^d mod N for 0 <= c < N.
func (dec *Decryptor) Decrypt(c uint64) (uint64, error) {
	if c >= dec.sk.N {
		return 0, fmt.Errorf("%w: c=%d, N=%d", ErrCiphertextRange, c, dec.sk.N)
	}
	return arith.ModExp(c, dec.sk.D, dec.sk.N), nil
}

// DecryptBytes reverses EncryptBytes. It fails when a decrypted value does
// not fit a byte, which means the ciphertext was not produced by
// EncryptBytes under the matching key.
func (dec *Decryptor) DecryptBytes(cts []uint64) ([]byte, error) {
	msg := make([]byte, len(cts))
	for i, ct := range cts {
		m, err := dec.Decrypt(ct)
		if err != nil {
			return nil, fmt.Errorf("ciphertext %d: %w", i, err)
		}
		if m > 255 {
			return nil, fmt.Errorf("toyrsa: ciphertext %d decrypts to %d, not a byte", i, m)
		}
		msg[i] = byte(m)
	}
	return msg, nil
}
