// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package models

// User is the identity resolved after a successful authentication. It lives
// only in memory for the lifetime of the session; the durable artifact is the
// session token, not the user record.
type User struct {
	// ID is the server-side account identifier.
	ID int64 `json:"id"`

	// Email is the login identifier, unique per account.
	Email string `json:"email"`

	// Role is the account's role. The JSON name follows the API wire
	// format, which calls this field user_type.
	Role Role `json:"user_type"`

	// BusinessName is the display name of the business behind the account.
	BusinessName string `json:"business_name"`
}
