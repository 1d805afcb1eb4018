package tui

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	alertStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	aboutBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
