// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package tui

import "strings"

func renderBuildInfoWindow(info BuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: CreditGuard client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))

	return renderPage("ABOUT", aboutBoxStyle.Render(b.String()), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
