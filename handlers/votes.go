// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/live-tally/aggregator"
	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/ledger"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/models"
	"github.com/danielhkuo/live-tally/referral"
)

type VoteHandler struct {
	agg *aggregator.Aggregator
}

func NewVoteHandler(agg *aggregator.Aggregator) *VoteHandler {
	return &VoteHandler{agg: agg}
}

// SubmitVote handles POST /vote
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Choice == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice is required")
		return
	}

	vote, err := h.agg.Submit(r.Context(), req.Choice, req.Referral)

	switch {
	case err == nil:
		slog.Info("vote accepted", "choice", vote.Choice, "vote_id", vote.ID,
			"has_referral", vote.ReferralCode != nil)
		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
			Status: "ok",
			Choice: vote.Choice,
		})

	case errors.Is(err, aggregator.ErrInvalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Invalid choice. Must be one of: "+strings.Join(models.Choices, ", "))

	case errors.Is(err, aggregator.ErrInvalidReferral):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid referral code")

	case errors.Is(err, counter.ErrUnavailable),
		errors.Is(err, ledger.ErrUnavailable),
		errors.Is(err, referral.ErrStoreUnavailable):
		slog.Error("vote submission degraded", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service temporarily unavailable")

	default:
		slog.Error("vote submission failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
