// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package shor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qcrypto-edu/qday/factor"
	"github.com/qcrypto-edu/qday/sampling"
)

func TestFindOrder(t *testing.T) {
	testCases := []struct {
		a, n  uint64
		order uint64
	}{
		{2, 15, 4}, // 2^4 = 16 ≡ 1
		{7, 15, 4}, // 7^2 = 49 ≡ 4, 7^4 ≡ 1
		{4, 15, 2}, // 4^2 = 16 ≡ 1
		{2, 21, 6}, // 2^6 = 64 ≡ 1
	}

	for _, tc := range testCases {
		r, err := FindOrder(tc.a, tc.n, DefaultOrderBudget)
		require.NoError(t, err, "a=%d n=%d", tc.a, tc.n)
		require.Equal(t, tc.order, r, "a=%d n=%d", tc.a, tc.n)
	}

	// For the textbook modulus just check the defining property.
	r, err := FindOrder(5, 3233, DefaultOrderBudget)
	require.NoError(t, err)
	require.Greater(t, r, uint64(1))
	cur := uint64(1)
	for i := uint64(0); i < r; i++ {
		cur = cur * 5 % 3233
	}
	require.Equal(t, uint64(1), cur)
}

func TestFindOrderErrors(t *testing.T) {
	_, err := FindOrder(3, 15, DefaultOrderBudget)
	require.ErrorIs(t, err, ErrNotCoprime)

	_, err = FindOrder(2, 15, 2)
	require.ErrorIs(t, err, ErrOrderNotFound)

	_, err = FindOrder(1, 15, DefaultOrderBudget)
	require.Error(t, err)
	_, err = FindOrder(15, 15, DefaultOrderBudget)
	require.Error(t, err)
}

func TestFactorSemiprimes(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("shor test key 01"))
	require.NoError(t, err)
	cfg := Config{Source: src}

	testCases := []struct {
		n, p, q uint64
	}{
		{15, 3, 5},
		{21, 3, 7},
		{3233, 53, 61},
		{10403, 101, 103},
	}

	for _, tc := range testCases {
		res, err := Factor(tc.n, cfg)
		require.NoError(t, err, "n=%d", tc.n)
		require.Equal(t, tc.p, res.P, "n=%d", tc.n)
		require.Equal(t, tc.q, res.Q, "n=%d", tc.n)
		require.Equal(t, factor.MethodShorClassical, res.Method)
		require.Greater(t, res.Iterations, uint64(0))
	}
}

func TestFactorEven(t *testing.T) {
	res, err := Factor(286, Config{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.P)
	require.Equal(t, uint64(143), res.Q)
}

// Every base is coprime to a prime modulus and every order search ends at
// cur = 1, but no gcd step can split a prime. The attempt budget must run
// out rather than loop forever, and the failed run still reports its work
// counters like the classical attacks do.
func TestFactorPrimeFails(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("shor test key 02"))
	require.NoError(t, err)

	res, err := Factor(101, Config{Attempts: 4, Source: src})
	require.ErrorIs(t, err, factor.ErrNoFactor)
	require.NotNil(t, res)
	require.Equal(t, factor.MethodShorClassical, res.Method)
	require.Greater(t, res.Iterations, uint64(0))
}

// n = 3 leaves no base in [2, n-2]; the run must fail cleanly instead of
// panicking on an empty draw range.
func TestFactorSmallestPrime(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("shor test key 03"))
	require.NoError(t, err)

	var res *factor.Result
	require.NotPanics(t, func() {
		res, err = Factor(3, Config{Attempts: 2, Source: src})
	})
	require.ErrorIs(t, err, factor.ErrNoFactor)
	require.NotNil(t, res)
}

func TestFactorInvalidModulus(t *testing.T) {
	for _, n := range []uint64{0, 1} {
		_, err := Factor(n, Config{})
		require.ErrorIs(t, err, factor.ErrInvalidModulus)
	}
}
