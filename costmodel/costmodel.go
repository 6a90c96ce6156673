// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package costmodel estimates the operation counts of factoring an RSA
// modulus of a given bit length, classically (trial division, Pollard's
// rho, GNFS) and with Shor's algorithm on a quantum computer. Counts are
// arbitrary-precision floats: the GNFS estimate for RSA-4096 is far beyond
// float64 range.
package costmodel

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// ErrInvalidBits reports an unusable key size.
var ErrInvalidBits = fmt.Errorf("costmodel: bit length must be at least 2")

var (
	third     = big.NewFloat(1.0 / 3.0)
	twoThirds = big.NewFloat(2.0 / 3.0)
	ln2       = bigfloat.Log(big.NewFloat(2))
	// gnfsConst is (64/9)^(1/3), the constant in the GNFS L-function.
	gnfsConst = bigfloat.Pow(big.NewFloat(64.0/9.0), third)
)

// ClassicalOps estimates the operations of the general number field sieve
// on an n-bit modulus: exp((64/9)^(1/3) · (ln N)^(1/3) · (ln ln N)^(2/3)).
func ClassicalOps(bits int) *big.Float {
	lnN := new(big.Float).Mul(big.NewFloat(float64(bits)), ln2)
	lnlnN := bigfloat.Log(lnN)

	exponent := new(big.Float).Mul(gnfsConst, bigfloat.Pow(lnN, third))
	exponent.Mul(exponent, bigfloat.Pow(lnlnN, twoThirds))
	return bigfloat.Exp(exponent)
}

// QuantumOps estimates Shor's algorithm at bits³ gate operations.
func QuantumOps(bits int) *big.Float {
	b := float64(bits)
	return big.NewFloat(b * b * b)
}

// TrialDivisionOps estimates brute-force factoring at √N = 2^(bits/2).
func TrialDivisionOps(bits int) *big.Float {
	return pow2(float64(bits) / 2)
}

// RhoOps estimates Pollard's rho at N^(1/4) = 2^(bits/4).
func RhoOps(bits int) *big.Float {
	return pow2(float64(bits) / 4)
}

// Speedup returns the classical-to-quantum operation ratio.
func Speedup(bits int) *big.Float {
	return new(big.Float).Quo(ClassicalOps(bits), QuantumOps(bits))
}

func pow2(exp float64) *big.Float {
	return bigfloat.Pow(big.NewFloat(2), big.NewFloat(exp))
}

// Estimate bundles the per-key-size numbers for reporting.
type Estimate struct {
	Bits      int
	Classical *big.Float
	Quantum   *big.Float
	Speedup   *big.Float
}

// Estimates computes one Estimate per requested key size.
func Estimates(bitSizes []int) ([]Estimate, error) {
	out := make([]Estimate, 0, len(bitSizes))
	for _, bits := range bitSizes {
		if bits < 2 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidBits, bits)
		}
		out = append(out, Estimate{
			Bits:      bits,
			Classical: ClassicalOps(bits),
			Quantum:   QuantumOps(bits),
			Speedup:   Speedup(bits),
		})
	}
	return out, nil
}
