// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/tally"
)

type TallyHandler struct {
	pub *tally.Publisher
}

func NewTallyHandler(pub *tally.Publisher) *TallyHandler {
	return &TallyHandler{pub: pub}
}

// GetTally handles GET /votes
func (h *TallyHandler) GetTally(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.pub.Current(r.Context())
	if err != nil {
		slog.Error("failed to read tally", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// StreamTally handles GET /stream as a server-sent-event stream: one
// snapshot immediately on connect, then one per tick until the client
// disconnects. Disconnect is the only termination signal.
func (h *TallyHandler) StreamTally(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	slog.Info("stream opened", "remote", r.RemoteAddr)

	// Subscribe is tied to the request context; the channel closes
	// within one tick of disconnect and the subscription is released.
	for snapshot := range h.pub.Subscribe(r.Context()) {
		data, err := json.Marshal(snapshot)
		if err != nil {
			slog.Error("failed to encode snapshot", "error", err)
			continue
		}

		fmt.Fprintf(w, "event: votes\ndata: %s\n\n", data)
		flusher.Flush()
	}

	slog.Info("stream closed", "remote", r.RemoteAddr)
}
