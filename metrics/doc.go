// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes process-wide prometheus collectors: request
// counts and latencies per endpoint, plus database pool gauges sampled
// on each /metrics scrape.
package metrics
