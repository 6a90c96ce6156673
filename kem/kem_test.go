// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package kem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qcrypto-edu/qday/sampling"
)

func TestNewParameters(t *testing.T) {
	testCases := []struct {
		name string
		k, n int
		q    uint64
		ok   bool
	}{
		{"Toy", 2, 128, 3329, true},
		{"Rank3", 3, 64, 3329, true},
		{"MinLength", 1, MessageBits, 64, true},
		{"ZeroRank", 0, 128, 3329, false},
		{"TooShort", 2, MessageBits - 1, 3329, false},
		{"TinyModulus", 2, 128, 63, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParameters(tc.k, tc.n, tc.q)
			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidParameters)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.k, p.K())
			require.Equal(t, tc.n, p.N())
			require.Equal(t, tc.q, p.Q())
		})
	}
}

func TestKeyShapes(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("kem test key 001"))
	require.NoError(t, err)

	pk, sk := NewKeyGenerator(ParamsToy, src).GenKeyPair()

	require.Len(t, sk.S, ParamsToy.K())
	for _, row := range sk.S {
		require.Len(t, row, ParamsToy.N())
		for _, v := range row {
			require.GreaterOrEqual(t, v, int8(-2))
			require.LessOrEqual(t, v, int8(2))
		}
	}

	require.Len(t, pk.A, ParamsToy.K())
	require.Len(t, pk.T, ParamsToy.K())
	for i := range pk.A {
		require.Len(t, pk.A[i], ParamsToy.K())
		for j := range pk.A[i] {
			require.Len(t, pk.A[i][j], ParamsToy.N())
			for _, v := range pk.A[i][j] {
				require.Less(t, v, ParamsToy.Q())
			}
		}
	}
}

// With errors bounded by a handful of units against a q/4 = 832 decoding
// margin the two sides must always agree at the toy parameters.
func TestEncapsDecapsAgree(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("kem test key 002"))
	require.NoError(t, err)

	pk, sk := NewKeyGenerator(ParamsToy, src).GenKeyPair()
	enc := NewEncapsulator(ParamsToy, pk, src)
	dec := NewDecapsulator(ParamsToy, sk)

	for i := 0; i < 50; i++ {
		secret, ct := enc.Encapsulate()
		require.Equal(t, secret, dec.Decapsulate(ct), "trial %d", i)
	}
}

func TestSecretsVaryAcrossEncapsulations(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("kem test key 003"))
	require.NoError(t, err)

	pk, _ := NewKeyGenerator(ParamsToy, src).GenKeyPair()
	enc := NewEncapsulator(ParamsToy, pk, src)

	seen := make(map[SharedSecret]bool)
	for i := 0; i < 20; i++ {
		secret, _ := enc.Encapsulate()
		seen[secret] = true
	}
	require.Greater(t, len(seen), 1)
}

func TestWrongKeyDisagrees(t *testing.T) {
	src, err := sampling.NewKeyed([]byte("kem test key 004"))
	require.NoError(t, err)

	kg := NewKeyGenerator(ParamsToy, src)
	pk, _ := kg.GenKeyPair()
	_, skOther := kg.GenKeyPair()

	enc := NewEncapsulator(ParamsToy, pk, src)
	decOther := NewDecapsulator(ParamsToy, skOther)

	mismatches := 0
	for i := 0; i < 10; i++ {
		secret, ct := enc.Encapsulate()
		if secret != decOther.Decapsulate(ct) {
			mismatches++
		}
	}
	require.Greater(t, mismatches, 0)
}

func TestDeterministicWithKeyedSource(t *testing.T) {
	run := func() (SharedSecret, *Ciphertext) {
		src, err := sampling.NewKeyed([]byte("kem fixed key 05"))
		require.NoError(t, err)
		pk, _ := NewKeyGenerator(ParamsToy, src).GenKeyPair()
		return NewEncapsulator(ParamsToy, pk, src).Encapsulate()
	}

	s1, ct1 := run()
	s2, ct2 := run()
	require.Equal(t, s1, s2)
	require.Equal(t, ct1, ct2)
}
