// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lib/pq"
)

const (
	// TotalRows is the target size of the reference set.
	TotalRows = 500_000

	// BatchSize rows go into each COPY batch.
	BatchSize = 10_000

	// KnownCode is always present after seeding, for smoke tests.
	KnownCode = "conf-partner-2026"
	KnownName = "SREDay Conference Partner"
)

const codeChars = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	namePrefixes = []string{"Tech", "Cloud", "Data", "Dev", "Ops", "Infra", "Net", "Code", "App", "Web"}
	nameSuffixes = []string{"Corp", "Labs", "Systems", "Solutions", "Inc", "Co", "Partners", "Group", "Ltd", "LLC"}
)

// Referrals populates the referral_partners table with TotalRows rows,
// always including KnownCode. Idempotent: a fully seeded table is left
// alone; a partially seeded one is truncated and reloaded.
func Referrals(db *sql.DB) error {
	var existing int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM referral_partners`).Scan(&existing); err != nil {
		return fmt.Errorf("failed to count referral partners: %w", err)
	}

	if existing >= TotalRows {
		slog.Info("referral partners already seeded, skipping", "rows", humanize.Comma(existing))
		return nil
	}

	if existing > 0 {
		slog.Info("partial seed found, clearing and reseeding", "rows", humanize.Comma(existing))
		if _, err := db.Exec(`TRUNCATE referral_partners RESTART IDENTITY`); err != nil {
			return fmt.Errorf("failed to truncate referral partners: %w", err)
		}
	}

	slog.Info("seeding referral partners", "target", humanize.Comma(int64(TotalRows)))

	seen := make(map[string]bool, TotalRows)
	seen[KnownCode] = true

	inserted := 0
	first := true
	for inserted < TotalRows {
		batch := min(BatchSize, TotalRows-inserted)
		if err := copyBatch(db, seen, batch, first); err != nil {
			return err
		}
		first = false
		inserted += batch
		slog.Info("seed progress",
			"inserted", humanize.Comma(int64(inserted)),
			"target", humanize.Comma(int64(TotalRows)))
	}

	// The known code must survive every seed run
	var found bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM referral_partners WHERE code = $1)`, KnownCode).Scan(&found)
	if err != nil {
		return fmt.Errorf("failed to verify known code: %w", err)
	}
	if !found {
		return fmt.Errorf("known code %q missing after seed", KnownCode)
	}

	slog.Info("seeding complete", "rows", humanize.Comma(int64(inserted)), "known_code", KnownCode)
	return nil
}

// copyBatch streams one batch through COPY inside a transaction.
// The first batch carries the known code.
func copyBatch(db *sql.DB, seen map[string]bool, n int, includeKnown bool) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(pq.CopyIn("referral_partners", "code", "name", "created_at"))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	count := 0
	if includeKnown {
		if _, err := stmt.Exec(KnownCode, KnownName, time.Now()); err != nil {
			return fmt.Errorf("failed to copy known code: %w", err)
		}
		count++
	}

	for count < n {
		code := randomCode(20)
		if seen[code] {
			continue
		}
		seen[code] = true
		if _, err := stmt.Exec(code, randomName(), randomDate()); err != nil {
			return fmt.Errorf("failed to copy row: %w", err)
		}
		count++
	}

	// Flush the COPY buffer
	if _, err := stmt.Exec(); err != nil {
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed batch: %w", err)
	}
	return nil
}

func randomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeChars[rand.Intn(len(codeChars))]
	}
	return string(b)
}

func randomName() string {
	prefix := namePrefixes[rand.Intn(len(namePrefixes))]
	suffix := nameSuffixes[rand.Intn(len(nameSuffixes))]
	return fmt.Sprintf("%s%s-%d", prefix, suffix, 1000+rand.Intn(9000))
}

func randomDate() time.Time {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rand.Intn(days+1))
}
