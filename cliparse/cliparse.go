// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           int
	DatabaseURL    string
	RedisURL       string
	CacheCapacity  int
	StreamInterval time.Duration
	DBMaxConns     int
	DBTimeout      time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("live-tally", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.RedisURL, "r", "", "Redis URL for vote counters (empty = in-memory)")

	// Tuning knobs
	fs.IntVar(&cfg.CacheCapacity, "cache-capacity", 0, "Referral validation cache capacity")
	fs.DurationVar(&cfg.StreamInterval, "stream-interval", 0, "Tally stream tick interval")
	fs.IntVar(&cfg.DBMaxConns, "pool-size", 0, "Max open database connections")
	fs.DurationVar(&cfg.DBTimeout, "db-timeout", 0, "Database acquisition timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if cfg.CacheCapacity == 0 {
		if capStr := os.Getenv("REFERRAL_CACHE_CAPACITY"); capStr != "" {
			capacity, err := strconv.Atoi(capStr)
			if err != nil || capacity <= 0 {
				return Config{}, errors.New("invalid REFERRAL_CACHE_CAPACITY env variable")
			}
			cfg.CacheCapacity = capacity
		} else {
			cfg.CacheCapacity = 128
		}
	}

	if cfg.StreamInterval == 0 {
		if intervalStr := os.Getenv("STREAM_INTERVAL"); intervalStr != "" {
			interval, err := time.ParseDuration(intervalStr)
			if err != nil || interval <= 0 {
				return Config{}, errors.New("invalid STREAM_INTERVAL env variable")
			}
			cfg.StreamInterval = interval
		} else {
			cfg.StreamInterval = time.Second
		}
	}

	if cfg.DBMaxConns == 0 {
		if poolStr := os.Getenv("DB_POOL_SIZE"); poolStr != "" {
			size, err := strconv.Atoi(poolStr)
			if err != nil || size <= 0 {
				return Config{}, errors.New("invalid DB_POOL_SIZE env variable")
			}
			cfg.DBMaxConns = size
		} else {
			cfg.DBMaxConns = 5
		}
	}

	if cfg.DBTimeout == 0 {
		if timeoutStr := os.Getenv("DB_TIMEOUT"); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil || timeout <= 0 {
				return Config{}, errors.New("invalid DB_TIMEOUT env variable")
			}
			cfg.DBTimeout = timeout
		} else {
			cfg.DBTimeout = 2 * time.Second
		}
	}

	return cfg, nil
}
