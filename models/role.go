// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package models

// Role identifies which side of the credit relationship an account is on.
// The server assigns it once at registration; the client never reassigns it.
// Role determines which dashboard subtree is reachable and which API scope
// the account may call.
type Role string

const (
	// RoleRetailer buys on credit from suppliers and pays dues.
	RoleRetailer Role = "retailer"

	// RoleSupplier extends trade credit to retailers and records dues.
	RoleSupplier Role = "supplier"

	// RoleFintech assesses retailers and manages credit limits.
	RoleFintech Role = "fintech"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRetailer, RoleSupplier, RoleFintech:
		return true
	}
	return false
}

// DashboardPath returns the role-scoped dashboard route, e.g.
// "/retailer/dashboard". The result is meaningless for invalid roles.
func (r Role) DashboardPath() string {
	return "/" + string(r) + "/dashboard"
}

func (r Role) String() string {
	return string(r)
}
