// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package costmodel

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantumOps(t *testing.T) {
	testCases := []struct {
		bits int
		want float64
	}{
		{10, 1e3},
		{100, 1e6},
		{2048, 2048 * 2048 * 2048},
	}
	for _, tc := range testCases {
		got, _ := QuantumOps(tc.bits).Float64()
		require.InDelta(t, tc.want, got, tc.want*1e-12, "bits=%d", tc.bits)
	}
}

// For RSA-2048 the GNFS estimate is around 1e35 operations; the test pins
// the order of magnitude rather than the exact value.
func TestClassicalOpsMagnitude(t *testing.T) {
	ops := ClassicalOps(2048)
	require.Equal(t, 1, ops.Cmp(big.NewFloat(1e30)))
	require.Equal(t, -1, ops.Cmp(big.NewFloat(1e40)))
}

func TestClassicalOpsMonotonic(t *testing.T) {
	prev := ClassicalOps(256)
	for _, bits := range []int{512, 1024, 2048, 4096} {
		cur := ClassicalOps(bits)
		require.Equal(t, 1, cur.Cmp(prev), "bits=%d", bits)
		prev = cur
	}
}

func TestBruteForceOps(t *testing.T) {
	got, _ := TrialDivisionOps(20).Float64()
	require.InDelta(t, 1024, got, 1e-6)

	got, _ = RhoOps(20).Float64()
	require.InDelta(t, 32, got, 1e-6)
}

func TestSpeedupGrows(t *testing.T) {
	small := Speedup(512)
	large := Speedup(2048)
	require.Equal(t, 1, small.Cmp(big.NewFloat(1)))
	require.Equal(t, 1, large.Cmp(small))
}

func TestEstimates(t *testing.T) {
	ests, err := Estimates([]int{1024, 2048})
	require.NoError(t, err)
	require.Len(t, ests, 2)
	require.Equal(t, 1024, ests[0].Bits)
	require.Equal(t, 2048, ests[1].Bits)

	_, err = Estimates([]int{1024, 1})
	require.ErrorIs(t, err, ErrInvalidBits)
}

func TestTimeAtRate(t *testing.T) {
	testCases := []struct {
		name string
		ops  *big.Float
		rate float64
		want string
	}{
		{"Seconds", big.NewFloat(30e9), 1e9, "30.00 sec"},
		{"Minutes", big.NewFloat(120e9), 1e9, "2.00 min"},
		{"Hours", big.NewFloat(7200e9), 1e9, "2.00 hours"},
		{"Days", big.NewFloat(86400e9 * 3), 1e9, "3.00 days"},
		{"Years", big.NewFloat(86400e9 * 365 * 2), 1e9, "2.00 years"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TimeAtRate(tc.ops, tc.rate))
		})
	}

	t.Run("Astronomical", func(t *testing.T) {
		got := TimeAtRate(ClassicalOps(2048), 1e9)
		require.True(t, strings.HasSuffix(got, " years"), "got %q", got)
		require.Contains(t, got, "e+", "expected scientific notation, got %q", got)
	})
}
