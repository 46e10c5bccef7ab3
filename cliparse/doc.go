// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: PostgreSQL connection string (required)
  - RedisURL: Redis URL for counters; empty selects in-memory counters
  - CacheCapacity: referral validation cache size (default: 128)
  - StreamInterval: tally stream tick (default: 1s)
  - DBMaxConns: connection pool cap (default: 5)
  - DBTimeout: per-call acquisition timeout (default: 2s)

# CLI Flags

	-p                Server port
	-d                Database URL
	-r                Redis URL
	--cache-capacity  Referral cache capacity
	--stream-interval Tally stream tick interval
	--pool-size       Max open database connections
	--db-timeout      Database acquisition timeout

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	DATABASE_URL            → -d
	REDIS_URL               → -r
	REFERRAL_CACHE_CAPACITY → --cache-capacity
	STREAM_INTERVAL         → --stream-interval
	DB_POOL_SIZE            → --pool-size
	DB_TIMEOUT              → --db-timeout

CLI flags take precedence over environment variables. DATABASE_URL is
the only required setting.
*/
package cliparse
