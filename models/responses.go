// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package models

// AuthResponse is the success body of POST /auth/login/ and
// POST /auth/register/: the opaque session token plus the resolved user.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileResponse is the body of GET /profile/.
type ProfileResponse struct {
	User User `json:"user"`
}

// APIError is the error body the server returns on non-2xx responses.
// Depending on the endpoint the human-readable text arrives in either
// Message or Error; Text resolves whichever is present.
type APIError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns the server-supplied message, preferring Error over Message,
// or "" when neither field is set.
func (e APIError) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
