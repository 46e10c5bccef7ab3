// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryIncrement(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	n, err := m.Increment(ctx, "print")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected post-increment value 1, got %d", n)
	}

	n, err = m.Increment(ctx, "print")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected post-increment value 2, got %d", n)
	}

	n, err = m.Increment(ctx, "stare")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("independent choice should start at 1, got %d", n)
	}
}

// TestMemoryIncrementConcurrent verifies no increments are lost under
// concurrent writers to the same and different keys
func TestMemoryIncrementConcurrent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const workers = 50
	const perWorker = 200

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			choice := "print"
			if n%2 == 1 {
				choice = "ai"
			}
			for j := 0; j < perWorker; j++ {
				if _, err := m.Increment(ctx, choice); err != nil {
					t.Error(err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	counts, err := m.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}

	expected := int64(workers / 2 * perWorker)
	if counts["print"] != expected {
		t.Errorf("expected %d print votes, got %d", expected, counts["print"])
	}
	if counts["ai"] != expected {
		t.Errorf("expected %d ai votes, got %d", expected, counts["ai"])
	}
}

func TestMemorySnapshotIsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Increment(ctx, "revert")

	counts, _ := m.Snapshot(ctx)
	counts["revert"] = 999

	fresh, _ := m.Snapshot(ctx)
	if fresh["revert"] != 1 {
		t.Errorf("mutating a snapshot must not affect the store, got %d", fresh["revert"])
	}
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Increment(ctx, "print")
	m.Increment(ctx, "stare")

	if err := m.Reset(ctx); err != nil {
		t.Fatal(err)
	}

	counts, _ := m.Snapshot(ctx)
	if len(counts) != 0 {
		t.Errorf("expected empty counters after reset, got %v", counts)
	}

	// Counting restarts from zero
	n, _ := m.Increment(ctx, "print")
	if n != 1 {
		t.Errorf("expected 1 after reset, got %d", n)
	}
}

func TestMemoryLoad(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Increment(ctx, "print")

	// Rebuild from ledger counts replaces existing state wholesale
	m.Load(map[string]int64{"ai": 7, "restart": 3})

	counts, _ := m.Snapshot(ctx)
	if counts["ai"] != 7 || counts["restart"] != 3 {
		t.Errorf("expected loaded counts, got %v", counts)
	}
	if _, ok := counts["print"]; ok {
		t.Error("Load should replace prior counts")
	}

	n, _ := m.Increment(ctx, "ai")
	if n != 8 {
		t.Errorf("increment should continue from loaded value, got %d", n)
	}
}
