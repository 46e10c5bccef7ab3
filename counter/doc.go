// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package counter provides the fast-path vote counters.

# Store Interface

Store is the atomic per-choice counter used for live tallies:

	n, err := counters.Increment(ctx, "print") // post-increment value
	counts, err := counters.Snapshot(ctx)      // all counters

Increment is linearizable per key - concurrent increments to the same
choice never lose updates. Snapshot does not block writers and may
observe a torn view across choices; callers accept this.

# Backends

Two implementations:

  - Memory: mutex-guarded map, process-local. Default backend. Counts
    are rebuilt from the vote ledger at startup via Load.
  - Redis: INCR on "vote:<choice>" keys, matching a shared Redis
    deployment where counts survive restarts.

Backend failures surface as ErrUnavailable; the aggregator fails the
submission rather than dropping the count.

# Consistency

The counters are the low-latency display path, not the audit source.
The vote ledger is authoritative; Σ counters converges to the ledger
row count absent a crash mid-submission.
*/
package counter
