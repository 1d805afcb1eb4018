// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package tui

import (
	"strings"

	"github.com/creditguard/creditguard-client/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or server unreachable"
	}

	return err.Error()
}

// failureMessage picks the display text for a failed session operation:
// transport failures get the generic unreachable line, server rejections keep
// the message the session retained.
func failureMessage(session service.SessionService, err error) string {
	if err == nil {
		return ""
	}
	if msg := humanizeServerUnavailableError(err); msg != err.Error() {
		return msg
	}
	if msg := session.Err(); msg != "" {
		return msg
	}
	return err.Error()
}
