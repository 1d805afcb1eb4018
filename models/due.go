// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package models

import "time"

// DueStatus is the lifecycle state of a due entry.
type DueStatus string

const (
	DuePending DueStatus = "pending"
	DuePaid    DueStatus = "paid"
	DueOverdue DueStatus = "overdue"
)

// Due is an amount a retailer owes a supplier for a purchase on credit.
type Due struct {
	// ID is the server-side identifier of the due entry.
	ID int64 `json:"id"`

	// SupplierName and RetailerName are display names of the two parties.
	SupplierName string `json:"supplier_name"`
	RetailerName string `json:"retailer_name"`

	// Amount is the owed sum.
	Amount float64 `json:"amount"`

	// Description is free-form text describing the purchase.
	Description string `json:"description"`

	// PurchaseDate is the date of the underlying purchase.
	PurchaseDate time.Time `json:"purchase_date"`

	// DueDate is the date by which the amount must be paid.
	DueDate time.Time `json:"due_date"`

	// Status is pending until paid; the server flips it to overdue when
	// DueDate passes.
	Status DueStatus `json:"status"`
}

// NewDue is the payload of POST /dues/ used by suppliers to record a new due
// against a retailer.
type NewDue struct {
	RetailerID   int64     `json:"retailer"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	PurchaseDate time.Time `json:"purchase_date"`
	DueDate      time.Time `json:"due_date"`
}

// PaymentRequest is the payload of POST /dues/{id}/pay/.
type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}
