// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/live-tally/cliparse"
	"github.com/danielhkuo/live-tally/counter"
	"github.com/danielhkuo/live-tally/db"
	"github.com/danielhkuo/live-tally/ledger"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/referral"
	"github.com/danielhkuo/live-tally/router"
)

func main() {
	var err error

	// Load .env if present (local development)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Bounded pool; ledger and referral calls fail fast on exhaustion
	// via their own context timeouts
	dbConn.SetMaxOpenConns(cfg.DBMaxConns)
	dbConn.SetMaxIdleConns(cfg.DBMaxConns)

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	votes := ledger.New(dbConn, cfg.DBTimeout)

	// Pick the counter backend
	var counters counter.Store
	if cfg.RedisURL != "" {
		redisCounters, err := counter.NewRedis(cfg.RedisURL)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisCounters.Close()

		if err := redisCounters.Ping(context.Background()); err != nil {
			slog.Error("redis ping failed", "error", err)
			os.Exit(1)
		}
		counters = redisCounters
		slog.Info("Counter store ready", "backend", "redis")
	} else {
		// Memory counters do not survive restarts; rebuild from the
		// ledger, which is authoritative
		memCounters := counter.NewMemory()
		counts, err := votes.CountByChoice(context.Background())
		if err != nil {
			slog.Error("counter rebuild from ledger failed", "error", err)
			os.Exit(1)
		}
		memCounters.Load(counts)
		counters = memCounters
		slog.Info("Counter store ready", "backend", "memory", "rebuilt_choices", len(counts))
	}

	// Referral validator with bounded result cache
	validator, err := referral.NewValidator(referral.NewSQLStore(dbConn, cfg.DBTimeout), cfg.CacheCapacity)
	if err != nil {
		slog.Error("validator setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(dbConn, counters, validator, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
