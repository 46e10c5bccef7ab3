// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package referral

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/live-tally/models"
)

// DefaultTimeout bounds connection acquisition plus query execution for
// each reference-store lookup.
const DefaultTimeout = 2 * time.Second

// SQLStore reads the referral_partners reference table. The table is
// seeded out-of-band (see the seed package) and read-only here.
type SQLStore struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLStore(db *sql.DB, timeout time.Duration) *SQLStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SQLStore{db: db, timeout: timeout}
}

func (s *SQLStore) FindByCode(ctx context.Context, code string) (models.ReferralPartner, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var partner models.ReferralPartner
	err := s.db.QueryRowContext(ctx, `
		SELECT id, code, name, created_at
		FROM referral_partners
		WHERE code = $1
		LIMIT 1
	`, code).Scan(&partner.ID, &partner.Code, &partner.Name, &partner.CreatedAt)

	if err == sql.ErrNoRows {
		return models.ReferralPartner{}, false, nil
	}
	if err != nil {
		return models.ReferralPartner{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return partner, true, nil
}
