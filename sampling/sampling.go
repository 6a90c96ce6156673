// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sampling abstracts the randomness consumed by the toy schemes so
// that demonstrations are reproducible and tests can pin exact outputs.
//
// The default implementation draws from a keyed XOF (lattigo's sampling
// PRNG), so the whole draw sequence is determined by the key.
package sampling

import (
	"encoding/binary"
	"fmt"

	lsampling "github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// Source is the randomness interface every scheme draws from. Tests may
// supply their own implementation to force exact values.
type Source interface {
	// Uint64n returns a uniform value in [0, bound). bound must be nonzero.
	Uint64n(bound uint64) uint64
	// IntRange returns a uniform value in [lo, hi]. Requires lo <= hi.
	IntRange(lo, hi int64) int64
}

// NewKeyed returns a Source whose entire output is determined by key.
// The same key always yields the same draw sequence.
func NewKeyed(key []byte) (Source, error) {
	prng, err := lsampling.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("sampling: keyed prng: %w", err)
	}
	return &xofSource{prng: prng}, nil
}

// New returns a Source keyed with fresh system entropy.
func New() (Source, error) {
	prng, err := lsampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("sampling: prng: %w", err)
	}
	return &xofSource{prng: prng}, nil
}

// xofSource draws uniform integers from the keyed XOF stream.
type xofSource struct {
	prng lsampling.PRNG
}

func (s *xofSource) uint64() uint64 {
	var buf [8]byte
	if _, err := s.prng.Read(buf[:]); err != nil {
		panic(fmt.Errorf("sampling: xof read: %w", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s *xofSource) Uint64n(bound uint64) uint64 {
	if bound == 0 {
		panic("sampling: Uint64n with zero bound")
	}
	// Rejection sampling keeps the draw uniform for any bound.
	threshold := -bound % bound // 2^64 mod bound
	for {
		if v := s.uint64(); v >= threshold {
			return v % bound
		}
	}
}

func (s *xofSource) IntRange(lo, hi int64) int64 {
	if lo > hi {
		panic("sampling: IntRange with lo > hi")
	}
	return lo + int64(s.Uint64n(uint64(hi-lo)+1))
}
