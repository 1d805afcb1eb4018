// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package models

// RetailerStats is the aggregate snapshot served to retailer dashboards.
type RetailerStats struct {
	// CreditLimit is the externally assessed ceiling for purchases on credit.
	CreditLimit float64 `json:"credit_limit"`

	// AvailableCredit is the remaining headroom under CreditLimit.
	AvailableCredit float64 `json:"available_credit"`

	// CreditScore is the externally supplied score; the client never
	// computes or adjusts it.
	CreditScore int `json:"credit_score"`

	// TotalDue is the sum of all pending dues.
	TotalDue float64 `json:"total_due"`

	// DueToday is the sum of dues whose due date is today.
	DueToday float64 `json:"due_today"`

	// OverdueAmount is the sum of dues past their due date.
	OverdueAmount float64 `json:"overdue_amount"`
}

// SupplierStats is the aggregate snapshot served to supplier dashboards.
type SupplierStats struct {
	// TotalOutstanding is the sum of pending dues across all retailers.
	TotalOutstanding float64 `json:"total_outstanding"`

	// MonthlySales is the transaction volume of the last 30 days.
	MonthlySales float64 `json:"monthly_sales"`

	// ActiveRetailers counts distinct retailers with at least one due.
	ActiveRetailers int `json:"active_retailers"`

	// OverdueAmount is the sum of dues past their due date.
	OverdueAmount float64 `json:"overdue_amount"`
}

// FintechStats is the aggregate snapshot served to fintech dashboards.
type FintechStats struct {
	// TotalCreditExtended is the sum of all approved credit limits.
	TotalCreditExtended float64 `json:"total_credit_extended"`

	// ActiveRetailers counts retailers with an approved assessment.
	ActiveRetailers int `json:"active_retailers"`

	// PendingAssessments counts assessments awaiting a decision.
	PendingAssessments int `json:"pending_assessments"`

	// AverageInterestRate is the mean rate across active credit lines,
	// in percent.
	AverageInterestRate float64 `json:"average_interest_rate"`

	// DefaultRate is the share of credit lines in default, in percent.
	DefaultRate float64 `json:"default_rate"`

	// TotalDueAmount is the sum of outstanding dues across the portfolio.
	TotalDueAmount float64 `json:"total_due_amount"`
}

// DashboardStats is the role-discriminated stats snapshot returned by
// GET /dashboard/stats/. Exactly one of the per-role sections is populated:
// the one matching Role. The snapshot is read-only on the client; mutations
// happen through side-channel actions followed by a refetch.
type DashboardStats struct {
	Role     Role           `json:"role"`
	Retailer *RetailerStats `json:"retailer,omitempty"`
	Supplier *SupplierStats `json:"supplier,omitempty"`
	Fintech  *FintechStats  `json:"fintech,omitempty"`
}
