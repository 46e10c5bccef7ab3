// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed bulk-loads the referral_partners reference set.

Referrals inserts 500,000 rows in COPY batches of 10,000 and guarantees
the smoke-test code "conf-partner-2026" is present. Running it against
a fully seeded table is a no-op; a partial table is cleared and
reloaded. It is an out-of-band loader (see cmd/seed), never part of the
live request path.
*/
package seed
