// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package toyrsa

import (
	"fmt"

	"github.com/qcrypto-edu/qday/internal/arith"
	"github.com/qcrypto-edu/qday/sampling"
)

// KeyGenerator produces toy RSA keypairs from primes of a fixed bit length.
type KeyGenerator struct {
	bits int
	src  sampling.Source
}

// NewKeyGenerator creates a generator drawing primes of the given bit
// length from src. The bit length is validated by GenKeyPair.
func NewKeyGenerator(bits int, src sampling.Source) *KeyGenerator {
	return &KeyGenerator{bits: bits, src: src}
}

// GenKeyPair draws two distinct primes p, q of the configured bit length,
// then derives N = p*q, φ = (p-1)(q-1), the public exponent e and the
// private exponent d = e⁻¹ mod φ. The public exponent is 65537 when that
// fits below φ, otherwise the smallest odd e ≥ 3 coprime to φ.
func (g *KeyGenerator) GenKeyPair() (*KeyPair, error) {
	if g.bits < MinBits || g.bits > MaxBits {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidBitLength, g.bits, MinBits, MaxBits)
	}

	p := g.genPrime()
	q := g.genPrime()
	for q == p {
		q = g.genPrime()
	}

	n := p * q
	phi := (p - 1) * (q - 1)

	e := uint64(65537)
	if e >= phi || arith.GCD(e, phi) != 1 {
		e = 3
		for arith.GCD(e, phi) != 1 {
			e += 2
		}
	}

	d, ok := arith.ModInverse(e, phi)
	if !ok {
		// Unreachable: e was chosen coprime to φ.
		return nil, fmt.Errorf("toyrsa: no inverse for e=%d mod φ=%d", e, phi)
	}

	return &KeyPair{
		Public:  PublicKey{N: n, E: e},
		Private: PrivateKey{N: n, D: d},
		P:       p,
		Q:       q,
		Phi:     phi,
	}, nil
}

// genPrime draws odd candidates uniformly from [2^(b-1), 2^b-1] until one
// passes trial-division primality.
func (g *KeyGenerator) genPrime() uint64 {
	lo := uint64(1) << (g.bits - 1)
	hi := uint64(1)<<g.bits - 1
	for {
		n := lo + g.src.Uint64n(hi-lo+1)
		n |= 1
		if arith.IsPrime(n) {
			return n
		}
	}
}
