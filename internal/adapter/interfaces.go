// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package adapter provides transport-layer abstractions for communicating with
// the CreditGuard server.
//
// The primary abstraction is [Gateway], which decouples the service layer from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400). The
// user-facing message carried by the server's error body is preserved in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/creditguard/creditguard-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// TokenSource supplies the bearer token attached to authenticated requests.
// It is re-read on every request so that token rotation or invalidation in
// the backing store takes effect immediately. Implementations return an empty
// string when no token is available.
type TokenSource interface {
	Read(ctx context.Context) (string, error)
}

// Gateway defines transport-agnostic communication with the CreditGuard
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type Gateway interface {
	// Login authenticates the user with the given credentials. On success it
	// returns the session token together with the authenticated user record.
	// A rejected attempt yields [ErrUnauthorized] or [ErrBadRequest] wrapped
	// around the server-supplied message.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates a new business account from the registration form. On
	// success it returns the session token together with the created user
	// record, so registration signs the user in without a second round trip.
	Register(ctx context.Context, form models.RegistrationForm) (models.AuthResponse, error)

	// Logout invalidates the current session token on the server. A failure
	// here is advisory only; callers discard the local session regardless.
	Logout(ctx context.Context) error

	// Profile fetches the user record bound to the current token. Returns
	// [ErrUnauthorized] (wrapped) when the token is missing, expired or
	// revoked, which callers treat as "not signed in" rather than a fault.
	Profile(ctx context.Context) (models.User, error)

	// DashboardStats fetches the aggregate dashboard figures for role. The
	// response shape differs per role; the returned [models.DashboardStats]
	// has exactly one of its role-specific fields populated.
	DashboardStats(ctx context.Context, role models.Role) (models.DashboardStats, error)

	// Dues lists the dues visible to the current user. The server scopes the
	// list by the authenticated user's role.
	Dues(ctx context.Context) ([]models.Due, error)

	// CreateDue records a new due against a retailer and returns the stored
	// record.
	CreateDue(ctx context.Context, due models.NewDue) (models.Due, error)

	// PayDue records a payment against the due identified by id and returns
	// the updated record.
	PayDue(ctx context.Context, id int64, payment models.PaymentRequest) (models.Due, error)

	// SetOnUnauthorized registers fn to be invoked whenever an authenticated
	// request is rejected with HTTP 401. The session layer uses it to discard
	// the stored token globally. Login and Register rejections do not fire
	// the hook.
	SetOnUnauthorized(fn func())
}
