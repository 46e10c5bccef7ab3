// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/live-tally/aggregator"
	"github.com/danielhkuo/live-tally/cliparse"
	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/handlers"
	"github.com/danielhkuo/live-tally/ledger"
	"github.com/danielhkuo/live-tally/metrics"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/referral"
	"github.com/danielhkuo/live-tally/tally"
)

func NewRouter(dbConn *sql.DB, counters counter.Store, validator *referral.Validator, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Assemble the core from its stores
	votes := ledger.New(dbConn, cfg.DBTimeout)
	agg := aggregator.New(counters, votes, validator)
	pub := tally.NewPublisher(counters, cfg.StreamInterval)

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(agg)
	tallyHandler := handlers.NewTallyHandler(pub)
	healthHandler := handlers.NewHealthHandler(counters, votes)

	// Submission and tally reads
	mux.HandleFunc("POST /vote", middleware.WithLogging(middleware.WithMetrics("/vote", voteHandler.SubmitVote)))
	mux.HandleFunc("GET /votes", middleware.WithLogging(middleware.WithMetrics("/votes", tallyHandler.GetTally)))

	// Long-lived tally stream (no completion log line per request; it
	// would only fire at disconnect)
	mux.HandleFunc("GET /stream", middleware.WithMetrics("/stream", tallyHandler.StreamTally))

	// Probes
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)

	// Prometheus exposition; pool gauges are sampled per scrape
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		if dbConn != nil {
			metrics.UpdatePoolStats(dbConn.Stats())
		}
		metrics.Handler().ServeHTTP(w, r)
	})

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("live-tally API v1"))
	})

	return mux
}
