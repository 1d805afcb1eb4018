// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package config

// validate checks that the final merged [ClientConfig] satisfies all
// invariants before it is used at startup. Defaults are merged as the last
// source, so a failure here means a source explicitly set an unusable value.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.APIAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.SessionDBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
