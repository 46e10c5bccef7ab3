// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the live-tally API server.

Live Tally is a conference live-polling service: attendees pick one of
five fixed answers, tallies update in near-real time over an SSE
stream, and every accepted vote is durably recorded with an optional
referral attribution.

# Starting the Server

The server requires a database URL via environment or CLI flag:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..." -r "redis://localhost:6379/0"

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - REDIS_URL (-r): Redis counters; omitted = in-memory counters
    rebuilt from the ledger at startup
  - REFERRAL_CACHE_CAPACITY (--cache-capacity): default 128
  - STREAM_INTERVAL (--stream-interval): default 1s
  - DB_POOL_SIZE (--pool-size): default 5
  - DB_TIMEOUT (--db-timeout): default 2s

# Architecture

The server uses a handler-based architecture with dependency injection:

  - counter: atomic per-choice tally counters (memory or Redis)
  - ledger: durable append-only vote record (PostgreSQL)
  - referral: code validation with a bounded LRU result cache
  - aggregator: the submission ordering contract
  - tally: snapshot assembly and the ticked stream producer
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - metrics: prometheus collectors
  - models: request/response and domain types
  - db: schema creation
  - cliparse: configuration parsing
  - seed: bulk referral-partner loader (see cmd/seed)

See package documentation for each component.
*/
package main
