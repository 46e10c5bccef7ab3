// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package referral validates referral codes against a large reference set.

# Bounded Cache

The reference table holds hundreds of thousands of rows, so every
lookup is an indexed query against a shared pool. Validator shortcuts
repeated lookups with a fixed-capacity LRU cache
(hashicorp/golang-lru):

	validator, err := referral.NewValidator(store, 128)
	partner, found, err := validator.Validate(ctx, code)

Both positive and negative outcomes are cached. Eviction is normal
steady-state behavior, never an error. Resident entries never exceed
the configured capacity regardless of how many distinct codes are seen.

# Failure Mode

A cache miss that cannot reach the store returns ErrStoreUnavailable
and caches nothing; validity is never guessed.
*/
package referral
