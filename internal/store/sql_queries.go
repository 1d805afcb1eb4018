// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package store

const (
	saveToken = `
		INSERT INTO session (key, value, updated_at)
		VALUES ('token', $1, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	readToken = `
		SELECT value
		FROM session
		WHERE key = 'token';`

	clearToken = `
		DELETE FROM session
		WHERE key = 'token';`
)
