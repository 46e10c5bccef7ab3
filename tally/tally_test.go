// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"testing"
	"time"

	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/models"
)

func TestCurrentZeroFilled(t *testing.T) {
	pub := NewPublisher(counter.NewMemory(), time.Second)

	snapshot, err := pub.Current(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(snapshot) != len(models.Choices) {
		t.Fatalf("expected %d choices, got %d", len(models.Choices), len(snapshot))
	}
	for _, choice := range models.Choices {
		entry, ok := snapshot[choice]
		if !ok {
			t.Fatalf("missing choice %q in snapshot", choice)
		}
		if entry.Count != 0 {
			t.Errorf("expected zero count for %s, got %d", choice, entry.Count)
		}
		if entry.Label != models.ChoiceLabels[choice] {
			t.Errorf("expected label %q, got %q", models.ChoiceLabels[choice], entry.Label)
		}
	}
}

func TestCurrentReflectsCounts(t *testing.T) {
	counters := counter.NewMemory()
	ctx := context.Background()
	counters.Increment(ctx, "print")
	counters.Increment(ctx, "print")
	counters.Increment(ctx, "ai")

	pub := NewPublisher(counters, time.Second)
	snapshot, err := pub.Current(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if snapshot["print"].Count != 2 {
		t.Errorf("expected 2 print votes, got %d", snapshot["print"].Count)
	}
	if snapshot["ai"].Count != 1 {
		t.Errorf("expected 1 ai vote, got %d", snapshot["ai"].Count)
	}
	if snapshot["stare"].Count != 0 {
		t.Errorf("expected 0 stare votes, got %d", snapshot["stare"].Count)
	}
}

// TestSubscribeInitialSnapshot verifies the first snapshot arrives
// well within one tick of connecting
func TestSubscribeInitialSnapshot(t *testing.T) {
	counters := counter.NewMemory()
	counters.Increment(context.Background(), "restart")

	pub := NewPublisher(counters, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := pub.Subscribe(ctx)

	select {
	case snapshot := <-updates:
		if snapshot["restart"].Count != 1 {
			t.Errorf("expected 1 restart vote in initial snapshot, got %d", snapshot["restart"].Count)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("no initial snapshot within half a tick")
	}
}

// TestSubscribeTicks verifies a snapshot per tick, observing counter
// changes between ticks
func TestSubscribeTicks(t *testing.T) {
	counters := counter.NewMemory()
	pub := NewPublisher(counters, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := pub.Subscribe(ctx)

	// Initial
	first := <-updates
	if first["stare"].Count != 0 {
		t.Errorf("expected 0 in initial snapshot, got %d", first["stare"].Count)
	}

	counters.Increment(ctx, "stare")

	deadline := time.After(time.Second)
	for {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				t.Fatal("stream closed unexpectedly")
			}
			if snapshot["stare"].Count == 1 {
				return // change observed on a later tick
			}
		case <-deadline:
			t.Fatal("ticked snapshots never reflected the new count")
		}
	}
}

// TestSubscribeCancel verifies the channel closes promptly on
// disconnect, releasing the subscription
func TestSubscribeCancel(t *testing.T) {
	pub := NewPublisher(counter.NewMemory(), 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	updates := pub.Subscribe(ctx)
	<-updates // initial snapshot

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return // closed within one tick
			}
		case <-deadline:
			t.Fatal("channel not closed after cancellation")
		}
	}
}
