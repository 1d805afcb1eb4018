// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package app contains shared application-layer constants used across the
// CreditGuard client services and screens.
//
// All Msg* constants are human-readable message strings surfaced to the user
// or written to log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgInvalidCredentials is shown when a login attempt is rejected and
	// the server supplies no message of its own.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgRegistrationFailed is shown when a registration attempt is
	// rejected and the server supplies no message of its own.
	MsgRegistrationFailed = "Registration failed"

	// MsgCredentialsRequired is raised client-side when the registration
	// form lacks an email or password.
	MsgCredentialsRequired = "Email and password are required"

	// MsgBusinessNameRequired is raised client-side, before any network
	// call, when the registration form has no business name.
	MsgBusinessNameRequired = "Business name is required"

	// MsgInvalidRole is raised client-side when the registration form
	// carries a role outside retailer/supplier/fintech.
	MsgInvalidRole = "Invalid user type"

	// MsgFintechDetailsRequired is raised client-side when a fintech
	// registration omits the extended fintech fields.
	MsgFintechDetailsRequired = "Registration number and license number are required"

	// MsgFintechTermsRequired is raised client-side when a fintech
	// registration carries a non-positive base credit limit or
	// interest rate.
	MsgFintechTermsRequired = "Base credit limit and interest rate must be positive"

	// MsgStatsLoadFailed is shown on the dashboard when the stats fetch
	// fails and no more specific message is available.
	MsgStatsLoadFailed = "Failed to load dashboard data"

	// MsgAuthInProgress is returned when a login or register is attempted
	// while another authentication operation is still in flight.
	MsgAuthInProgress = "Another sign-in attempt is already in progress"

	// MsgSessionCheckPending is returned when a user-initiated
	// authentication arrives before the startup session check has settled.
	MsgSessionCheckPending = "Session check is still in progress"
)
