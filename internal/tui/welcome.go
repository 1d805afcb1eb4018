package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type welcomeChoice struct {
	label string
	path  string
}

// WelcomeModel is the public landing page: a small menu that routes to the
// sign-in and registration screens.
type WelcomeModel struct {
	items []welcomeChoice
	idx   int
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		items: []welcomeChoice{
			{label: "Sign in", path: "/login"},
			{label: "Create account", path: "/register"},
			{label: "Register fintech partner", path: "/register/fintech"},
		},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "1", "2", "3":
		m.idx = int(keyMsg.String()[0] - '1')
		path := m.items[m.idx].path
		return m, func() tea.Msg { return NavigateTo{Path: path} }
	case "enter":
		path := m.items[m.idx].path
		return m, func() tea.Msg { return NavigateTo{Path: path} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label))
	}

	return renderPage("CREDITGUARD", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
