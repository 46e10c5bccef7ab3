// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package referral

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/danielhkuo/live-tally/models"
)

// ErrStoreUnavailable is returned when the reference store cannot be
// reached during a cache miss. The submission fails rather than
// guessing validity.
var ErrStoreUnavailable = errors.New("referral store unavailable")

// DefaultCacheCapacity bounds the validation-result cache. Memory usage
// is O(capacity), never O(distinct codes seen).
const DefaultCacheCapacity = 128

// Store looks up a referral code in the reference set by exact match.
type Store interface {
	FindByCode(ctx context.Context, code string) (models.ReferralPartner, bool, error)
}

// result remembers one validation outcome. Negative results are cached
// too, so repeated probing with invalid codes never reaches the store.
type result struct {
	valid     bool
	partner   models.ReferralPartner
	checkedAt time.Time
}

// Validator answers "is this referral code real" with an LRU cache in
// front of the reference store. The cache is safe for concurrent use;
// two callers missing on the same code may both query the store, which
// is idempotent and accepted.
type Validator struct {
	store Store
	cache *lru.Cache[string, result]
}

// NewValidator builds a Validator with a bounded result cache.
// A capacity of zero or less selects DefaultCacheCapacity.
func NewValidator(store Store, capacity int) (*Validator, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	cache, err := lru.New[string, result](capacity)
	if err != nil {
		return nil, err
	}
	return &Validator{store: store, cache: cache}, nil
}

// Validate returns the partner for code and whether it was found.
// Cache hits return the remembered outcome without touching the store.
// Store errors are returned without being cached.
func (v *Validator) Validate(ctx context.Context, code string) (models.ReferralPartner, bool, error) {
	if cached, ok := v.cache.Get(code); ok {
		return cached.partner, cached.valid, nil
	}

	partner, found, err := v.store.FindByCode(ctx, code)
	if err != nil {
		return models.ReferralPartner{}, false, err
	}

	v.cache.Add(code, result{valid: found, partner: partner, checkedAt: time.Now()})
	return partner, found, nil
}

// CacheLen reports the number of resident cache entries.
func (v *Validator) CacheLen() int {
	return v.cache.Len()
}
