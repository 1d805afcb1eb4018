// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// DuesModel is the due list screen shared by all roles. Suppliers can jump to
// the new-due form, retailers can open the payment screen for the selected
// entry, and anybody can copy a due summary to the clipboard.
type DuesModel struct {
	ctx     context.Context
	session service.SessionService
	dues    service.DuesService

	items   []models.Due
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewDuesModel(ctx context.Context, session service.SessionService, dues service.DuesService) *DuesModel {
	return &DuesModel{
		ctx:     ctx,
		session: session,
		dues:    dues,
	}
}

func (m *DuesModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *DuesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case duesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.dues
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case copiedMsg:
		m.status = "Copied"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		return m, m.cmdBackToDashboard()
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.newDue):
		if m.currentRole() == models.RoleSupplier {
			return m, func() tea.Msg { return NavigateTo{Path: "/dues/new"} }
		}
	case key.Matches(keyMsg, keys.pay):
		due, ok := m.current()
		if !ok {
			m.status = "No dues"
			return m, nil
		}
		if m.currentRole() != models.RoleRetailer {
			return m, nil
		}
		if due.Status == models.DuePaid {
			m.status = "Already paid"
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Path: "/dues/pay", Payload: paySelectedMsg{due: due}}
		}
	case key.Matches(keyMsg, keys.copy):
		due, ok := m.current()
		if !ok {
			m.status = "No dues"
			return m, nil
		}
		summary := fmt.Sprintf("%s │ %s │ due %s", due.Description, formatMoney(due.Amount), formatDate(due.DueDate))
		if err := clipboard.WriteAll(summary); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		return m, func() tea.Msg { return copiedMsg{} }
	}

	return m, nil
}

func (m *DuesModel) View() string {
	var b strings.Builder

	if m.loading {
		return renderPage("DUES", "Loading dues...", m.hotKeys())
	}

	if m.errMsg != "" {
		b.WriteString(alertStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString("No dues\n")
		return renderPage("DUES", strings.TrimRight(b.String(), "\n"), m.hotKeys())
	}

	counterparty := "Retailer"
	if m.currentRole() == models.RoleRetailer {
		counterparty = "Supplier"
	}

	b.WriteString(fmt.Sprintf("ID    │ %-20s │ %-12s │ %-10s │ %-8s │ %s\n", counterparty, "Amount", "Due date", "Status", "Description"))
	b.WriteString("──────┼──────────────────────┼──────────────┼────────────┼──────────┼────────────────\n")
	for i, due := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		b.WriteString(fmt.Sprintf(
			"%s %-4d│ %-20s │ %-12s │ %-10s │ %-8s │ %s\n",
			cursor,
			due.ID,
			fitText(m.counterpartyName(due), 20),
			formatMoney(due.Amount),
			formatDate(due.DueDate),
			due.Status,
			fitText(due.Description, 16),
		))
	}

	return renderPage("DUES", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *DuesModel) hotKeys() string {
	switch m.currentRole() {
	case models.RoleSupplier:
		return "n: new due │ c: copy │ r: reload │ ↑/↓: navigate │ esc: back"
	case models.RoleRetailer:
		return "p: pay │ c: copy │ r: reload │ ↑/↓: navigate │ esc: back"
	default:
		return "c: copy │ r: reload │ ↑/↓: navigate │ esc: back"
	}
}

func (m *DuesModel) counterpartyName(due models.Due) string {
	if m.currentRole() == models.RoleRetailer {
		return due.SupplierName
	}
	return due.RetailerName
}

func (m *DuesModel) current() (models.Due, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Due{}, false
	}
	return m.items[m.idx], true
}

func (m *DuesModel) currentRole() models.Role {
	user, ok := m.session.CurrentUser()
	if !ok {
		return ""
	}
	return user.Role
}

func (m *DuesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dues := m.dues

	return func() tea.Msg {
		items, err := dues.List(ctx)
		return duesLoadedMsg{dues: items, err: err}
	}
}

func (m *DuesModel) cmdBackToDashboard() tea.Cmd {
	role := m.currentRole()

	return func() tea.Msg {
		if role == "" {
			return NavigateTo{Path: "/"}
		}
		return NavigateTo{Path: role.DashboardPath()}
	}
}
