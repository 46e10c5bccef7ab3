// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command seed populates the referral_partners reference table.
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/live-tally/db"
	"github.com/danielhkuo/live-tally/seed"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		slog.Error("DATABASE_URL required")
		os.Exit(1)
	}

	dbConn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	if err := seed.Referrals(dbConn); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}
