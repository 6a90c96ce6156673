// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arith provides the shared integer primitives behind the toy
// schemes: overflow-safe modular arithmetic, gcd, modular inverses and
// trial-division primality. None of it is constant time.
package arith

import (
	"math"
	"math/bits"
)

// MulMod returns a*b mod m. It is exact for every uint64 input because the
// 128-bit intermediate product goes through bits.Mul64/Div64.
func MulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	// hi < m always holds for reduced operands, so Div64 cannot panic.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModExp returns base^exp mod m by square-and-multiply. Execution time
// depends on the bit pattern of exp.
func ModExp(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x with a*x ≡ 1 (mod m) via the extended Euclidean
// algorithm, and false when gcd(a, m) != 1. m must fit in an int64.
func ModInverse(a, m uint64) (uint64, bool) {
	g, x, _ := extGCD(int64(a%m), int64(m))
	if g != 1 {
		return 0, false
	}
	mi := int64(m)
	return uint64((x%mi + mi) % mi), true
}

func extGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// IsPrime reports whether n is prime, by trial division up to √n.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// SqrtFloor returns ⌊√n⌋.
func SqrtFloor(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	// math.Sqrt rounds; step back or forward until r² ≤ n < (r+1)².
	for r > 0 && r > n/r {
		r--
	}
	for (r+1) <= n/(r+1) {
		r++
	}
	return r
}
