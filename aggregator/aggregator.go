// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregator

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/live-tally/models"
)

var (
	// ErrInvalidChoice rejects a submission whose choice is not in the
	// fixed set. No side effects.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidReferral rejects a submission whose referral code is not
	// in the reference set. No side effects.
	ErrInvalidReferral = errors.New("invalid referral code")
)

// Counter is the fast-path increment the aggregator needs.
type Counter interface {
	Increment(ctx context.Context, choice string) (int64, error)
}

// Ledger is the durable append the aggregator needs.
type Ledger interface {
	Append(ctx context.Context, choice, referralCode string) (models.Vote, error)
}

// Validator answers whether a referral code exists in the reference set.
type Validator interface {
	Validate(ctx context.Context, code string) (models.ReferralPartner, bool, error)
}

// Aggregator orchestrates one vote submission: validation, counter
// increment, ledger append. Stores are injected at construction so
// tests can substitute fakes.
type Aggregator struct {
	counters  Counter
	ledger    Ledger
	validator Validator
}

func New(counters Counter, ledger Ledger, validator Validator) *Aggregator {
	return &Aggregator{counters: counters, ledger: ledger, validator: validator}
}

// Submit accepts one vote. Each step is a hard precondition for the
// next, so an invalid submission leaves no trace in counters or ledger:
//
//  1. choice must be a member of the fixed set
//  2. a non-empty referral code must exist in the reference set
//  3. counter increment
//  4. ledger append
//
// No lock spans steps 3 and 4. A crash between them leaves one counter
// ahead of the ledger; the counter is a display aid and the ledger is
// the record, so the window is accepted rather than paying for a
// cross-store transaction.
func (a *Aggregator) Submit(ctx context.Context, choice, referralCode string) (models.Vote, error) {
	if !models.ValidChoice(choice) {
		return models.Vote{}, fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}

	if referralCode != "" {
		_, found, err := a.validator.Validate(ctx, referralCode)
		if err != nil {
			return models.Vote{}, err
		}
		if !found {
			return models.Vote{}, fmt.Errorf("%w: %q", ErrInvalidReferral, referralCode)
		}
	}

	if _, err := a.counters.Increment(ctx, choice); err != nil {
		return models.Vote{}, err
	}

	vote, err := a.ledger.Append(ctx, choice, referralCode)
	if err != nil {
		return models.Vote{}, err
	}

	return vote, nil
}
