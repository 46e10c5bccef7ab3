// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the live-tally API.

# Handler Types

Each handler is a struct constructed with its dependencies:

  - VoteHandler: vote submission via the aggregator
  - TallyHandler: one-shot tally reads and the SSE stream
  - HealthHandler: liveness and readiness probes

# Submission Flow

	POST /vote {"choice": "print", "referral": "conf-partner-2026"}

Responses follow the error taxonomy: 400 for invalid choice or referral
code (no side effects), 503 when any backing store is unreachable
(counter, ledger, or reference store), 200 with {"status":"ok"} once
the vote is durably recorded.

# Tally Flow

	GET /votes  → full snapshot, zero-filled for unvoted choices
	GET /stream → SSE "votes" events, one on connect then one per second

# Probes

	GET /health → 200 while the process is up
	GET /ready  → 503 unless counters ping and the ledger answers
*/
package handlers
