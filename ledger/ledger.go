// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/live-tally/models"
)

// ErrUnavailable is returned when the durable store cannot be reached
// or a connection cannot be acquired within the configured timeout.
// A vote is never reported as accepted without a durable record.
var ErrUnavailable = errors.New("vote ledger unavailable")

// DefaultTimeout bounds connection acquisition plus query execution for
// each ledger call. Fail fast instead of queuing on an exhausted pool.
const DefaultTimeout = 2 * time.Second

// Store is the append-only record of accepted votes.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

func New(db *sql.DB, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{db: db, timeout: timeout}
}

// Append persists one immutable vote row and returns it with the
// assigned id and timestamp. The insert is a single statement, so the
// row either exists with all fields or not at all.
func (s *Store) Append(ctx context.Context, choice, referralCode string) (models.Vote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	code := sql.NullString{String: referralCode, Valid: referralCode != ""}

	var vote models.Vote
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO votes (choice, referral_code)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, choice, code).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		return models.Vote{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	vote.Choice = choice
	if code.Valid {
		vote.ReferralCode = &code.String
	}
	return vote, nil
}

// Count returns the total number of ledger rows. Health checks and
// convergence audits only, not the hot path.
func (s *Store) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

// CountByChoice returns per-choice row counts. Used to rebuild the
// fast-path counters at startup; the ledger is authoritative.
func (s *Store) CountByChoice(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT choice, COUNT(*) FROM votes GROUP BY choice
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var choice string
		var n int64
		if err := rows.Scan(&choice, &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		counts[choice] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return counts, nil
}

// Sample returns up to limit recent votes, newest first.
func (s *Store) Sample(ctx context.Context, limit int) ([]models.Vote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, choice, referral_code, created_at
		FROM votes
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var vote models.Vote
		var code sql.NullString
		if err := rows.Scan(&vote.ID, &vote.Choice, &code, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if code.Valid {
			vote.ReferralCode = &code.String
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return votes, nil
}
