package service

import "errors"

var (
	// ErrAuthInProgress is returned when Login or Register is called while
	// another authentication operation has not finished.
	ErrAuthInProgress = errors.New("authentication already in progress")

	// ErrSessionNotReady is returned when Login or Register is called
	// before the startup session check has settled.
	ErrSessionNotReady = errors.New("session check has not settled")

	// ErrNotAuthenticated is returned by operations that require a signed-in
	// user when the session is anonymous.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidRegistration is returned when a registration form fails
	// client-side validation. The wrapped text carries the field-level
	// message for display.
	ErrInvalidRegistration = errors.New("invalid registration")
)
