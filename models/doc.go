// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# The Choice Set

The poll options are fixed for the process lifetime:

	print   → "Add more print statements"
	stare   → "Stare at the code until it confesses"
	ai      → "Ask an AI to explain it"
	revert  → "Revert and pretend it never happened"
	restart → "Turn it off and on again"

Use ValidChoice to test membership before accepting a submission.

# Request Types

  - VoteRequest: choice, referral (optional)

# Response Types

  - VoteResponse: status, choice
  - ReadyResponse: status
  - ErrorResponse: error, message

# Domain Types

  - Vote: one accepted, durably recorded submission (append-only)
  - ReferralPartner: reference data row for a referral code
  - ChoiceTally / TallySnapshot: point-in-time counts per choice
*/
package models
