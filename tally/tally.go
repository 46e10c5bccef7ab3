// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"time"

	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/models"
)

// DefaultInterval is the snapshot cadence for subscribers.
const DefaultInterval = time.Second

// Publisher assembles counter snapshots into the stable tally shape and
// feeds long-lived viewers on a fixed cadence.
type Publisher struct {
	counters counter.Store
	interval time.Duration
}

func NewPublisher(counters counter.Store, interval time.Duration) *Publisher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Publisher{counters: counters, interval: interval}
}

// Current reads the counters once and returns a snapshot covering every
// known choice, zero-filled where no votes have arrived yet.
func (p *Publisher) Current(ctx context.Context) (models.TallySnapshot, error) {
	counts, err := p.counters.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make(models.TallySnapshot, len(models.Choices))
	for _, choice := range models.Choices {
		snapshot[choice] = models.ChoiceTally{
			Count: counts[choice],
			Label: models.ChoiceLabels[choice],
		}
	}
	return snapshot, nil
}

// Subscribe emits an initial snapshot immediately, then one per tick
// until ctx is canceled. The channel closes and the ticker is released
// within one tick of cancellation. Delivery is last-value-wins: a
// subscriber that reconnects simply starts from a fresh Current.
func (p *Publisher) Subscribe(ctx context.Context) <-chan models.TallySnapshot {
	updates := make(chan models.TallySnapshot, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			// Counter errors drop the frame; the stream stays up and the
			// next tick retries.
			if snapshot, err := p.Current(ctx); err == nil {
				select {
				case updates <- snapshot:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates
}
