// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/live-tally/aggregator"
	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/ledger"
	"github.com/danielhkuo/live-tally/models"
	"github.com/danielhkuo/live-tally/referral"
	"github.com/danielhkuo/live-tally/testutil"
)

func newVoteFixture(t *testing.T) (*VoteHandler, *counter.Memory, *testutil.FakeLedger) {
	t.Helper()

	counters := counter.NewMemory()
	votes := testutil.NewFakeLedger()
	store := testutil.NewFakeReferralStore(map[string]string{
		"conf-partner-2026": "SREDay Conference Partner",
	})
	validator, err := referral.NewValidator(store, 8)
	if err != nil {
		t.Fatal(err)
	}

	return NewVoteHandler(aggregator.New(counters, votes, validator)), counters, votes
}

func TestSubmitVote(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		expectedStatus int
		wantCount      map[string]int64
		wantLedger     int
	}{
		{
			name:           "valid choice",
			body:           models.VoteRequest{Choice: "print"},
			expectedStatus: http.StatusOK,
			wantCount:      map[string]int64{"print": 1},
			wantLedger:     1,
		},
		{
			name:           "valid choice with known referral",
			body:           models.VoteRequest{Choice: "ai", Referral: "conf-partner-2026"},
			expectedStatus: http.StatusOK,
			wantCount:      map[string]int64{"ai": 1},
			wantLedger:     1,
		},
		{
			name:           "invalid choice",
			body:           models.VoteRequest{Choice: "bogus"},
			expectedStatus: http.StatusBadRequest,
			wantCount:      map[string]int64{},
			wantLedger:     0,
		},
		{
			name:           "missing choice",
			body:           models.VoteRequest{},
			expectedStatus: http.StatusBadRequest,
			wantCount:      map[string]int64{},
			wantLedger:     0,
		},
		{
			name:           "unknown referral code",
			body:           models.VoteRequest{Choice: "ai", Referral: "not-a-real-code"},
			expectedStatus: http.StatusBadRequest,
			wantCount:      map[string]int64{},
			wantLedger:     0,
		},
		{
			name:           "malformed JSON",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
			wantCount:      map[string]int64{},
			wantLedger:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, counters, votes := newVoteFixture(t)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/vote", strings.NewReader(tt.rawBody))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = testutil.MakeRequest("POST", "/vote", tt.body, nil)
			}

			w := httptest.NewRecorder()
			handler.SubmitVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.VoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Status != "ok" {
					t.Errorf("expected status ok, got %q", resp.Status)
				}
			}

			counts, _ := counters.Snapshot(context.Background())
			for choice, n := range tt.wantCount {
				if counts[choice] != n {
					t.Errorf("expected %d votes for %s, got %d", n, choice, counts[choice])
				}
			}
			if len(counts) != len(tt.wantCount) {
				t.Errorf("unexpected counters %v", counts)
			}
			if got := len(votes.Votes()); got != tt.wantLedger {
				t.Errorf("expected %d ledger rows, got %d", tt.wantLedger, got)
			}
		})
	}
}

func TestSubmitVoteReferralPersisted(t *testing.T) {
	handler, _, votes := newVoteFixture(t)

	req := testutil.MakeRequest("POST", "/vote", models.VoteRequest{
		Choice:   "ai",
		Referral: "conf-partner-2026",
	}, nil)
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	rows := votes.Votes()
	if len(rows) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(rows))
	}
	if rows[0].ReferralCode == nil || *rows[0].ReferralCode != "conf-partner-2026" {
		t.Error("ledger row should carry the referral code")
	}
}

func TestSubmitVoteLedgerDown(t *testing.T) {
	handler, _, votes := newVoteFixture(t)
	votes.Fail(ledger.ErrUnavailable)

	req := testutil.MakeRequest("POST", "/vote", models.VoteRequest{Choice: "print"}, nil)
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestSubmitVoteCounterDown(t *testing.T) {
	votes := testutil.NewFakeLedger()
	validator, err := referral.NewValidator(testutil.NewFakeReferralStore(nil), 8)
	if err != nil {
		t.Fatal(err)
	}
	handler := NewVoteHandler(aggregator.New(testutil.FailingCounter{}, votes, validator))

	req := testutil.MakeRequest("POST", "/vote", models.VoteRequest{Choice: "print"}, nil)
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
	if len(votes.Votes()) != 0 {
		t.Error("no ledger write when the counter store is down")
	}
}

// TestSubmitVoteScenario walks the documented end-to-end sequence:
// two print votes, a bogus choice, a valid and an invalid referral
func TestSubmitVoteScenario(t *testing.T) {
	handler, counters, votes := newVoteFixture(t)

	submit := func(body models.VoteRequest) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.SubmitVote(w, testutil.MakeRequest("POST", "/vote", body, nil))
		return w
	}

	testutil.AssertStatus(t, submit(models.VoteRequest{Choice: "print"}), http.StatusOK)
	testutil.AssertStatus(t, submit(models.VoteRequest{Choice: "print"}), http.StatusOK)

	counts, _ := counters.Snapshot(context.Background())
	if counts["print"] != 2 {
		t.Errorf("expected print count 2, got %d", counts["print"])
	}

	testutil.AssertStatus(t, submit(models.VoteRequest{Choice: "bogus"}), http.StatusBadRequest)
	counts, _ = counters.Snapshot(context.Background())
	if counts["print"] != 2 || len(counts) != 1 {
		t.Errorf("rejected choice must not change counters, got %v", counts)
	}

	testutil.AssertStatus(t,
		submit(models.VoteRequest{Choice: "ai", Referral: "conf-partner-2026"}), http.StatusOK)
	rows := votes.Votes()
	last := rows[len(rows)-1]
	if last.ReferralCode == nil || *last.ReferralCode != "conf-partner-2026" {
		t.Error("expected referral code on the persisted vote")
	}

	testutil.AssertStatus(t,
		submit(models.VoteRequest{Choice: "ai", Referral: "not-a-real-code"}), http.StatusBadRequest)
	counts, _ = counters.Snapshot(context.Background())
	if counts["ai"] != 1 {
		t.Errorf("invalid referral must not change counters, got %d", counts["ai"])
	}
	if len(votes.Votes()) != 3 {
		t.Errorf("expected 3 ledger rows, got %d", len(votes.Votes()))
	}
}
