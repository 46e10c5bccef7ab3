// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Choice constants - the fixed set of pollable options
const (
	ChoicePrint   = "print"
	ChoiceStare   = "stare"
	ChoiceAI      = "ai"
	ChoiceRevert  = "revert"
	ChoiceRestart = "restart"
)

// Choices lists every valid choice in display order
var Choices = []string{
	ChoicePrint,
	ChoiceStare,
	ChoiceAI,
	ChoiceRevert,
	ChoiceRestart,
}

// ChoiceLabels maps each choice to its display label
var ChoiceLabels = map[string]string{
	ChoicePrint:   "Add more print statements",
	ChoiceStare:   "Stare at the code until it confesses",
	ChoiceAI:      "Ask an AI to explain it",
	ChoiceRevert:  "Revert and pretend it never happened",
	ChoiceRestart: "Turn it off and on again",
}

// ValidChoice reports whether choice is a member of the fixed choice set
func ValidChoice(choice string) bool {
	_, ok := ChoiceLabels[choice]
	return ok
}

// Request types

type VoteRequest struct {
	Choice   string `json:"choice"`
	Referral string `json:"referral,omitempty"`
}

// Response types

type VoteResponse struct {
	Status string `json:"status"`
	Choice string `json:"choice"`
}

type ReadyResponse struct {
	Status string `json:"status"`
}

// Domain types

type Vote struct {
	ID           int64     `json:"id"`
	Choice       string    `json:"choice"`
	ReferralCode *string   `json:"referral_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReferralPartner struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ChoiceTally is the per-choice slice of a tally snapshot
type ChoiceTally struct {
	Count int64  `json:"count"`
	Label string `json:"label"`
}

// TallySnapshot maps every known choice to its count and label.
// Each count is accurate at its own read instant; the map as a whole
// may be torn across choices.
type TallySnapshot map[string]ChoiceTally

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
