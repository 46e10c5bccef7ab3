// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the durable, append-only record of accepted votes.

The ledger is the source of truth: the fast-path counters are a display
aid and can be rebuilt from CountByChoice. Rows are never updated or
deleted.

Every call carries a short context timeout (default 2s) covering pool
acquisition and query execution; exhaustion surfaces as ErrUnavailable
rather than queuing latent requests.
*/
package ledger
