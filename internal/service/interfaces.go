// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package service implements the client-side application services of the
// CreditGuard terminal client: the session lifecycle, dashboard data loading,
// and due management. Services sit between the transport gateway and the TUI;
// they own all client-visible state and never touch the terminal.
package service

import (
	"context"

	"github.com/creditguard/creditguard-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SessionState is the lifecycle phase of the client session.
type SessionState int

const (
	// StateUninitialized is the phase before Init has been called.
	StateUninitialized SessionState = iota

	// StateChecking is the phase while the stored token is being verified
	// against the server.
	StateChecking

	// StateAuthenticated means a verified user is signed in.
	StateAuthenticated

	// StateAnonymous means nobody is signed in. The session cycles between
	// StateAuthenticated and StateAnonymous for the rest of its lifetime.
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// SessionService is the single source of truth for "who is logged in".
type SessionService interface {
	// Init restores the session from the token store: no stored token
	// settles to StateAnonymous without any network call; a stored token is
	// verified via the profile endpoint, settling to StateAuthenticated on
	// success or clearing the token and settling to StateAnonymous on any
	// failure. Init is called once at startup; subsequent calls return the
	// already-settled state.
	Init(ctx context.Context) SessionState

	// Login authenticates with the given credentials. On success the token
	// is persisted and the session becomes StateAuthenticated. Only one
	// authentication operation may run at a time, and none before Init has
	// settled. The rejection message, if any, is retained in Err.
	Login(ctx context.Context, creds models.Credentials) error

	// Register creates a new account and, like Login, signs the user in on
	// success. The form is validated client-side before any network call:
	// credentials and business name are required, the role must be one of
	// the known three, and fintech registrations must carry the extended
	// fintech fields.
	Register(ctx context.Context, form models.RegistrationForm) error

	// Logout tears the session down. The server call is best-effort; the
	// local token and user are discarded regardless of its outcome.
	// Logging out twice is the same as logging out once.
	Logout(ctx context.Context) error

	// Invalidate discards the session without a server call. It is wired
	// to the gateway's unauthorized hook so a 401 anywhere signs the user
	// out globally.
	Invalidate()

	// State returns the current lifecycle phase.
	State() SessionState

	// CurrentUser returns the signed-in user, or ok=false while the
	// session is not StateAuthenticated.
	CurrentUser() (user models.User, ok bool)

	// Err returns the display message of the most recent failed operation,
	// or "" after a success. Each new operation overwrites it.
	Err() string
}

// DashboardService loads and caches the role-specific dashboard snapshot.
type DashboardService interface {
	// Load fetches the snapshot if none is cached for the current user's
	// role, and is a no-op otherwise. Called on dashboard entry.
	Load(ctx context.Context) error

	// Refresh unconditionally refetches the snapshot. Every fetch carries
	// its own request id; a completion that is no longer the latest issued
	// request is discarded, so a stale response never overwrites a fresher
	// one. A failed refresh records the error but keeps the previous
	// snapshot.
	Refresh(ctx context.Context) error

	// Snapshot returns the last successfully loaded stats, or ok=false if
	// nothing has loaded yet.
	Snapshot() (stats models.DashboardStats, ok bool)

	// Loading reports whether at least one fetch is in flight.
	Loading() bool

	// Err returns the display message of the most recent failed fetch, or
	// "" after a success.
	Err() string

	// Close unsubscribes from the event channel. The service must not be
	// used afterwards.
	Close()
}

// DuesService manages due entries through the gateway and announces
// mutations on the event channel.
type DuesService interface {
	// List returns the dues visible to the signed-in user.
	List(ctx context.Context) ([]models.Due, error)

	// Create records a new due and publishes a due-created event.
	Create(ctx context.Context, due models.NewDue) (models.Due, error)

	// Pay records a payment against the due identified by id and publishes
	// a payment-made event.
	Pay(ctx context.Context, id int64, payment models.PaymentRequest) (models.Due, error)
}
