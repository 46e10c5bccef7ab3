// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregator defines the consistency contract of a vote
submission.

Submit runs validation before any durable side effect, then increments
the fast-path counter, then appends to the ledger. The two writes are
deliberately not transactional; see Submit for the accepted
inconsistency window.

Store dependencies are narrow interfaces (Counter, Ledger, Validator)
satisfied by the counter, ledger, and referral packages in production
and by fakes in tests.
*/
package aggregator
