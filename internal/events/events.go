// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package events carries domain change notifications between client
// components.
//
// The server does not push events yet, so the [Notifier] implementations here
// are in-process only: actions that mutate server state (creating a due,
// recording a payment) publish the matching event locally, and the dashboard
// layer subscribes to refetch its data. When a server push channel becomes
// available it can feed the same bus without changing any subscriber.
package events

import "time"

// EventType identifies the kind of domain change an [Event] describes.
type EventType string

const (
	// DueCreated fires after a supplier records a new due.
	DueCreated EventType = "due_created"

	// DueUpdated fires after an existing due changes, for example when the
	// server flips a pending due to overdue.
	DueUpdated EventType = "due_updated"

	// PaymentMade fires after a payment is recorded against a due.
	PaymentMade EventType = "payment_made"

	// CreditLimitUpdated fires after a fintech adjusts a retailer's
	// credit limit.
	CreditLimitUpdated EventType = "credit_limit_updated"
)

// Event is a single domain change notification.
type Event struct {
	// Type identifies the kind of change.
	Type EventType

	// Data carries optional event-specific details, such as the id of the
	// affected due. Subscribers must treat it as read-only.
	Data map[string]any

	// At is the local time the event was published.
	At time.Time
}
