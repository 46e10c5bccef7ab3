// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

CreateSchema initializes the two tables and is safe to call multiple
times (IF NOT EXISTS throughout):

  - votes: append-only vote ledger (id, choice, referral_code, created_at)
  - referral_partners: seeded reference set (code, name, created_at)

The code index on referral_partners keeps exact-match validation
queries fast against hundreds of thousands of rows.
*/
package db
