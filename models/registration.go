// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package models

// Credentials is the nested user object of a registration request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FintechDetails carries the extra fields the fintech signup form collects on
// top of the common registration payload. They are absent for retailer and
// supplier registrations.
type FintechDetails struct {
	// RegistrationNumber is the company registration number.
	RegistrationNumber string `json:"registration_number"`

	// LicenseNumber is the lending license number.
	LicenseNumber string `json:"license_number"`

	// BaseCreditLimit is the default credit ceiling the partner offers to
	// newly assessed retailers.
	BaseCreditLimit float64 `json:"credit_limit"`

	// InterestRate is the default annual interest rate in percent.
	InterestRate float64 `json:"interest_rate"`
}

// RegistrationForm is the full payload of POST /auth/register/. The wire
// shape mirrors the API contract: credentials are nested under "user", the
// role travels as "user_type".
type RegistrationForm struct {
	User         Credentials     `json:"user"`
	Role         Role            `json:"user_type"`
	BusinessName string          `json:"business_name"`
	Phone        string          `json:"phone"`
	GSTNumber    string          `json:"gst_number"`
	Address      string          `json:"address"`
	Fintech      *FintechDetails `json:"fintech_details,omitempty"`
}
