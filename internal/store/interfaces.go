// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package store implements durable client-side persistence for the session
// token.
//
// The token occupies a single keyed slot in a local SQLite database so that a
// signed-in session survives client restarts. Storage unavailability is never
// fatal: when the database file cannot be opened the package degrades to a
// memory-only store and the session simply does not outlive the process.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore is the durable slot holding the opaque session token.
//
// There is exactly one logical writer (the active session service);
// transport-layer readers must call Read on every request rather than caching
// the value, so that a logout-triggered Clear takes effect on the next
// outgoing call.
type TokenStore interface {
	// Save writes token to the slot, replacing any previous value.
	Save(ctx context.Context, token string) error

	// Read returns the stored token, or [ErrNoToken] if the slot is empty.
	Read(ctx context.Context) (string, error)

	// Clear empties the slot. It is idempotent: clearing an already empty
	// slot is not an error.
	Clear(ctx context.Context) error
}
