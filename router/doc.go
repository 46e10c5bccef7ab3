// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ method patterns.

# Routes

	POST /vote    → submit a vote
	GET  /votes   → current tally snapshot
	GET  /stream  → SSE tally stream
	GET  /health  → liveness
	GET  /ready   → readiness (counter + ledger reachable)
	GET  /metrics → prometheus exposition
	GET  /        → service banner

NewRouter wires the aggregation core (ledger, aggregator, publisher)
from the injected database handle, counter store, and validator.
*/
package router
