// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the CreditGuard
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// Adapter holds the API endpoint address and timeout used by the
	// outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown on the build-info screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP transport layer.
type Adapter struct {
	// APIAddress is the base URL of the CreditGuard REST API
	// (e.g. "http://localhost:8000/api").
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local session database.
type Storage struct {
	// SessionDBPath is the path of the SQLite file that persists the
	// session token across client restarts.
	// Env: STORAGE_SESSION_DB_PATH
	SessionDBPath string `env:"SESSION_DB_PATH"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the dashboard refresh worker
	// refetches stats while a session is authenticated.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaults returns the built-in configuration used for any field that no
// other source provided.
func defaults() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{
			APIAddress:     "http://localhost:8000/api",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			SessionDBPath: "creditguard-session.db",
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
	}
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
