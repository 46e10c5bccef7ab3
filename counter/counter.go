// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"errors"
	"sync"
)

// ErrUnavailable is returned when the counter backend cannot be reached.
// A submission must fail rather than silently skip the increment.
var ErrUnavailable = errors.New("counter store unavailable")

// Store is the fast-path tally store. Increments are atomic per choice;
// Snapshot reads every counter without blocking writers and may observe
// a torn cross-choice view.
type Store interface {
	Increment(ctx context.Context, choice string) (int64, error)
	Snapshot(ctx context.Context) (map[string]int64, error)
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Memory is a process-local Store. It is the default backend when no
// Redis URL is configured; counts are rebuilt from the ledger at startup
// since they do not survive a restart.
type Memory struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemory() *Memory {
	return &Memory{counts: make(map[string]int64)}
}

// Increment atomically bumps the counter for choice and returns the
// post-increment value.
func (m *Memory) Increment(ctx context.Context, choice string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[choice]++
	return m.counts[choice], nil
}

// Snapshot returns a copy of all current counts.
func (m *Memory) Snapshot(ctx context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int64, len(m.counts))
	for choice, n := range m.counts {
		counts[choice] = n
	}
	return counts, nil
}

// Reset clears all counters. Administrative only.
func (m *Memory) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]int64)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// Load replaces the current counts wholesale. Used at startup to rebuild
// counters from the ledger, which is the authoritative record.
func (m *Memory) Load(counts map[string]int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]int64, len(counts))
	for choice, n := range counts {
		m.counts[choice] = n
	}
}
