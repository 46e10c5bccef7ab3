// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /vote", middleware.WithLogging(handler))

Logs request start and completion with method, path, and duration.

# Request Metrics

WithMetrics records prometheus counters and duration histograms under a
fixed endpoint label (never the raw path, to keep cardinality bounded):

	middleware.WithMetrics("/vote", handler)

The internal response recorder forwards Flush, so the SSE stream can be
instrumented too.

# JSON Helpers

  - JSONResponse: encode a value with status code
  - ErrorResponse: standard error envelope
  - ParseJSONBody: decode a request body

# CORS

CORS wraps the whole mux and answers preflight requests.
*/
package middleware
