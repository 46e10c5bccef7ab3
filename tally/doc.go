// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally publishes point-in-time vote snapshots.

Current is the one-shot read behind GET /votes; Subscribe is the ticked
producer behind the SSE stream. One goroutine per subscriber, tied to
the request context, exiting within one tick of disconnect.
*/
package tally
