// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/models"
)

// LedgerChecker is the slice of the ledger the readiness probe needs.
type LedgerChecker interface {
	Count(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	counters counter.Store
	ledger   LedgerChecker
}

func NewHealthHandler(counters counter.Store, ledger LedgerChecker) *HealthHandler {
	return &HealthHandler{counters: counters, ledger: ledger}
}

// Health handles GET /health - liveness, always OK while the process is up
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ReadyResponse{Status: "healthy"})
}

// Ready handles GET /ready - fails if either backing store is unreachable
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.counters.Ping(r.Context()); err != nil {
		slog.Warn("readiness: counter store unreachable", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Counter store not available")
		return
	}

	if _, err := h.ledger.Count(r.Context()); err != nil {
		slog.Warn("readiness: ledger unreachable", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Vote ledger not available")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReadyResponse{Status: "ready"})
}
