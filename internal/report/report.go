// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package report delivers the numeric results of demonstration runs to
// whatever consumes them: the CLI's own summary, tests, or an external
// plotting pipeline reading from Redis.
package report

import (
	"context"
	"sync"
	"time"
)

// Record is one demonstration result. The core routines never persist
// anything themselves; records exist purely for reporting and comparison.
type Record struct {
	Kind       string    `json:"kind"` // rsa, factor, shor, lwe, kem, sign
	Modulus    uint64    `json:"modulus,omitempty"`
	Bits       int       `json:"bits,omitempty"`
	Method     string    `json:"method,omitempty"`
	Iterations uint64    `json:"iterations,omitempty"`
	ElapsedUS  int64     `json:"elapsed_us,omitempty"`
	Success    bool      `json:"success"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Sink receives records.
type Sink interface {
	// Publish delivers one record.
	Publish(ctx context.Context, rec *Record) error
	// Close releases the sink's resources.
	Close() error
}

// MemorySink retains records in memory, for tests and for runs without an
// external consumer.
type MemorySink struct {
	mu      sync.Mutex
	records []*Record
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.records = append(s.records, rec)
	return nil
}

// Records returns a snapshot of everything published so far.
func (s *MemorySink) Records() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}
