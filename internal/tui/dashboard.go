// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// snapshotTickInterval paces the repaint of background refreshes: the
// dashboard snapshot may change outside the Bubble Tea loop (refresh worker,
// due events), and the terminal only redraws on a message.
const snapshotTickInterval = 2 * time.Second

// DashboardModel renders the role-scoped dashboard. One instance exists per
// role page; all three share the rendering shell and differ only in which
// stats section they print.
type DashboardModel struct {
	ctx       context.Context
	session   service.SessionService
	dashboard service.DashboardService
	role      models.Role

	loading bool
	errMsg  string
}

func NewDashboardModel(ctx context.Context, session service.SessionService, dashboard service.DashboardService, role models.Role) *DashboardModel {
	return &DashboardModel{
		ctx:       ctx,
		session:   session,
		dashboard: dashboard,
		role:      role,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.cmdLoad(), m.cmdTick())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if svcMsg := m.dashboard.Err(); svcMsg != "" {
				m.errMsg = svcMsg
			} else {
				m.errMsg = humanizeServerUnavailableError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		return m, nil

	case snapshotTickMsg:
		return m, m.cmdTick()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.dues):
		return m, func() tea.Msg { return NavigateTo{Path: "/dues"} }
	case key.Matches(keyMsg, keys.newDue):
		if m.role == models.RoleSupplier {
			return m, func() tea.Msg { return NavigateTo{Path: "/dues/new"} }
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	user, ok := m.session.CurrentUser()
	if ok {
		b.WriteString(user.BusinessName + " (" + roleLabel(user.Role) + ")\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(alertStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	stats, haveStats := m.dashboard.Snapshot()
	switch {
	case m.loading || m.dashboard.Loading():
		b.WriteString("Loading dashboard...\n")
	case !haveStats:
		b.WriteString("No data\n")
	default:
		b.WriteString(m.viewStats(stats))
	}

	hotKeys := "r: refresh │ d: dues │ l: sign out │ q: quit"
	if m.role == models.RoleSupplier {
		hotKeys = "r: refresh │ d: dues │ n: new due │ l: sign out │ q: quit"
	}

	return renderPage(strings.ToUpper(string(m.role))+" DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) viewStats(stats models.DashboardStats) string {
	var b strings.Builder

	switch {
	case stats.Retailer != nil:
		s := stats.Retailer
		b.WriteString("[ CREDIT ]\n")
		b.WriteString("Credit limit     : " + formatMoney(s.CreditLimit) + "\n")
		b.WriteString("Available credit : " + formatMoney(s.AvailableCredit) + "\n")
		b.WriteString(fmt.Sprintf("Credit score     : %d\n\n", s.CreditScore))
		b.WriteString("[ DUES ]\n")
		b.WriteString("Total due        : " + formatMoney(s.TotalDue) + "\n")
		b.WriteString("Due today        : " + formatMoney(s.DueToday) + "\n")
		b.WriteString("Overdue          : " + formatMoney(s.OverdueAmount) + "\n")

	case stats.Supplier != nil:
		s := stats.Supplier
		b.WriteString("[ SALES ]\n")
		b.WriteString("Outstanding      : " + formatMoney(s.TotalOutstanding) + "\n")
		b.WriteString("Monthly sales    : " + formatMoney(s.MonthlySales) + "\n")
		b.WriteString(fmt.Sprintf("Active retailers : %d\n", s.ActiveRetailers))
		b.WriteString("Overdue          : " + formatMoney(s.OverdueAmount) + "\n")

	case stats.Fintech != nil:
		s := stats.Fintech
		b.WriteString("[ PORTFOLIO ]\n")
		b.WriteString("Credit extended  : " + formatMoney(s.TotalCreditExtended) + "\n")
		b.WriteString(fmt.Sprintf("Active retailers : %d\n", s.ActiveRetailers))
		b.WriteString(fmt.Sprintf("Pending reviews  : %d\n\n", s.PendingAssessments))
		b.WriteString("[ RISK ]\n")
		b.WriteString(fmt.Sprintf("Avg interest     : %.2f%%\n", s.AverageInterestRate))
		b.WriteString(fmt.Sprintf("Default rate     : %.2f%%\n", s.DefaultRate))
		b.WriteString("Total due        : " + formatMoney(s.TotalDueAmount) + "\n")

	default:
		b.WriteString("No data\n")
	}

	return b.String()
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard

	return func() tea.Msg {
		return statsLoadedMsg{err: dashboard.Load(ctx)}
	}
}

func (m *DashboardModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard

	return func() tea.Msg {
		return statsLoadedMsg{err: dashboard.Refresh(ctx)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		_ = session.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m *DashboardModel) cmdTick() tea.Cmd {
	return tea.Tick(snapshotTickInterval, func(time.Time) tea.Msg {
		return snapshotTickMsg{}
	})
}
