// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/ledger"
	"github.com/danielhkuo/live-tally/models"
	"github.com/danielhkuo/live-tally/testutil"
)

func TestHealth(t *testing.T) {
	handler := NewHealthHandler(counter.NewMemory(), testutil.NewFakeLedger())

	w := httptest.NewRecorder()
	handler.Health(w, testutil.MakeRequest("GET", "/health", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ReadyResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "healthy" {
		t.Errorf("expected healthy, got %q", resp.Status)
	}
}

func TestReady(t *testing.T) {
	handler := NewHealthHandler(counter.NewMemory(), testutil.NewFakeLedger())

	w := httptest.NewRecorder()
	handler.Ready(w, testutil.MakeRequest("GET", "/ready", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestReadyCounterDown(t *testing.T) {
	handler := NewHealthHandler(testutil.FailingCounter{}, testutil.NewFakeLedger())

	w := httptest.NewRecorder()
	handler.Ready(w, testutil.MakeRequest("GET", "/ready", nil, nil))

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestReadyLedgerDown(t *testing.T) {
	votes := testutil.NewFakeLedger()
	votes.Fail(ledger.ErrUnavailable)
	handler := NewHealthHandler(counter.NewMemory(), votes)

	w := httptest.NewRecorder()
	handler.Ready(w, testutil.MakeRequest("GET", "/ready", nil, nil))

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
