// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qcrypto-edu/qday/sampling"
)

func testSource(t *testing.T) sampling.Source {
	t.Helper()
	src, err := sampling.NewKeyed([]byte("lwe test key 123"))
	require.NoError(t, err)
	return src
}

func TestNewParameters(t *testing.T) {
	testCases := []struct {
		name     string
		n        int
		q        uint64
		errBound int64
		ok       bool
	}{
		{"Classroom", 16, 251, 2, true},
		{"Benchmark", 64, 251, 2, true},
		{"ZeroDim", 0, 251, 2, false},
		{"TinyModulus", 16, 4, 0, false},
		{"NegativeBound", 16, 251, -1, false},
		{"BoundTooWide", 16, 251, 40, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParameters(tc.n, tc.q, tc.errBound)
			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidParameters)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.n, p.N())
			require.Equal(t, tc.q, p.Q())
			require.Equal(t, tc.errBound, p.ErrBound())
		})
	}
}

func TestKeyShapes(t *testing.T) {
	src := testSource(t)
	kg := NewKeyGenerator(Params16, src)

	sk := kg.GenSecretKey()
	require.Len(t, sk.S, 16)
	for _, v := range sk.S {
		require.GreaterOrEqual(t, v, int8(-1))
		require.LessOrEqual(t, v, int8(1))
	}

	pk := kg.GenPublicKey(sk)
	require.Len(t, pk.A, 16)
	require.Len(t, pk.B, 16)
	for i := range pk.A {
		require.Len(t, pk.A[i], 16)
		for _, v := range pk.A[i] {
			require.Less(t, v, Params16.Q())
		}
		require.Less(t, pk.B[i], Params16.Q())
	}
}

func TestEncryptRejectsNonBits(t *testing.T) {
	src := testSource(t)
	kg := NewKeyGenerator(Params16, src)
	sk := kg.GenSecretKey()
	pk := kg.GenPublicKey(sk)
	enc := NewEncryptor(Params16, pk, src)

	for _, bit := range []int{-1, 2, 7} {
		_, err := enc.Encrypt(bit)
		require.ErrorIs(t, err, ErrBitRange, "bit=%d", bit)
	}
}

// Decode failure is expected but must stay rare: the round-trip law holds
// only probabilistically, so the test bounds the failure rate instead of
// asserting zero failures.
func TestFailureRateBounded(t *testing.T) {
	src := testSource(t)

	rate, err := FailureRate(Params16, 500, src)
	require.NoError(t, err)
	require.LessOrEqual(t, rate, 0.05, "failure rate %.3f above 5%%", rate)

	rate, err = FailureRate(Params64, 500, src)
	require.NoError(t, err)
	require.LessOrEqual(t, rate, 0.05, "failure rate %.3f above 5%%", rate)
}

func TestFailureRateValidation(t *testing.T) {
	src := testSource(t)
	_, err := FailureRate(Params16, 0, src)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestDeterministicWithKeyedSource(t *testing.T) {
	run := func() (*PublicKey, *Ciphertext) {
		src, err := sampling.NewKeyed([]byte("fixed lwe key 00"))
		require.NoError(t, err)
		kg := NewKeyGenerator(Params16, src)
		sk := kg.GenSecretKey()
		pk := kg.GenPublicKey(sk)
		ct, err := NewEncryptor(Params16, pk, src).Encrypt(1)
		require.NoError(t, err)
		return pk, ct
	}

	pk1, ct1 := run()
	pk2, ct2 := run()
	require.Equal(t, pk1, pk2)
	require.Equal(t, ct1, ct2)
}

func TestCheckRoundTrip(t *testing.T) {
	src := testSource(t)
	kg := NewKeyGenerator(Params16, src)
	sk := kg.GenSecretKey()
	pk := kg.GenPublicKey(sk)
	enc := NewEncryptor(Params16, pk, src)
	dec := NewDecryptor(Params16, sk)

	failures := 0
	for i := 0; i < 200; i++ {
		if err := CheckRoundTrip(enc, dec, i%2); err != nil {
			require.ErrorIs(t, err, ErrDecodeMismatch)
			failures++
		}
	}
	require.LessOrEqual(t, failures, 10)
}
