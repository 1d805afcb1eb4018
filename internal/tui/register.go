// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/app"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

type registerStage int

const (
	registerStageRole registerStage = iota
	registerStageForm
)

// RegisterModel is the Bubble Tea model for retailer and supplier signup.
// The screen runs in two stages: a role picker first, then the account form.
// On success a [registerResultMsg] is produced; the session is already
// established, so [RootModel] routes straight to the new dashboard.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	stage       registerStage
	roleOptions []models.Role
	roleIdx     int

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	return &RegisterModel{
		ctx:         ctx,
		session:     session,
		roleOptions: []models.Role{models.RoleRetailer, models.RoleSupplier},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.stage = registerStageRole
	m.roleIdx = 0
	m.submitting = false
	m.errMsg = ""
	return nil
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = failureMessage(m.session, result.err)
		}
		return m, nil
	}

	switch m.stage {
	case registerStageRole:
		return m.updateRolePicker(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m *RegisterModel) updateRolePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Path: "/"} }
	case "up", "k":
		if m.roleIdx > 0 {
			m.roleIdx--
		}
	case "down", "j":
		if m.roleIdx < len(m.roleOptions)-1 {
			m.roleIdx++
		}
	case "1", "2":
		m.roleIdx = int(keyMsg.String()[0] - '1')
		m.startForm()
		return m, textinput.Blink
	case "enter":
		m.startForm()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *RegisterModel) startForm() {
	fields := make([]textinput.Model, 6)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].CharLimit = 254
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "business name"
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "phone"
	fields[3].CharLimit = 20
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "GST number (optional)"
	fields[4].Width = 40

	fields[5] = textinput.New()
	fields[5].Placeholder = "address (optional)"
	fields[5].Width = 40

	m.inputs = fields
	m.focus = 0
	m.errMsg = ""
	m.stage = registerStageForm
}

func (m *RegisterModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.stage = registerStageRole
			return m, nil
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			form := m.collectForm()
			if form.User.Email == "" || form.User.Password == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}
			if form.BusinessName == "" {
				m.errMsg = app.MsgBusinessNameRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(form)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) collectForm() models.RegistrationForm {
	return models.RegistrationForm{
		User: models.Credentials{
			Email:    strings.TrimSpace(m.inputs[0].Value()),
			Password: m.inputs[1].Value(),
		},
		Role:         m.roleOptions[m.roleIdx],
		BusinessName: strings.TrimSpace(m.inputs[2].Value()),
		Phone:        strings.TrimSpace(m.inputs[3].Value()),
		GSTNumber:    strings.TrimSpace(m.inputs[4].Value()),
		Address:      strings.TrimSpace(m.inputs[5].Value()),
	}
}

func (m *RegisterModel) cmdRegister(form models.RegistrationForm) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return registerResultMsg{err: session.Register(ctx, form)}
	}
}

func (m *RegisterModel) View() string {
	if m.stage == registerStageRole {
		return m.viewRolePicker()
	}
	return m.viewForm()
}

func (m *RegisterModel) viewRolePicker() string {
	var b strings.Builder
	for i, role := range m.roleOptions {
		cursor := " "
		if i == m.roleIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, roleLabel(role)))
	}

	return renderPage("CREATE ACCOUNT: CHOOSE TYPE", strings.TrimRight(b.String(), "\n"), "1-2/enter: select │ ↑/↓: navigate │ esc: back")
}

func (m *RegisterModel) viewForm() string {
	var b strings.Builder
	b.WriteString("Account type  : " + roleLabel(m.roleOptions[m.roleIdx]) + "\n\n")
	b.WriteString("Email         : [ " + m.inputs[0].View() + " ]\n")
	b.WriteString("Password      : [ " + m.inputs[1].View() + " ]\n")
	b.WriteString("Business name : [ " + m.inputs[2].View() + " ]\n")
	b.WriteString("Phone         : [ " + m.inputs[3].View() + " ]\n")
	b.WriteString("GST number    : [ " + m.inputs[4].View() + " ]\n")
	b.WriteString("Address       : [ " + m.inputs[5].View() + " ]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleRetailer:
		return "Retailer"
	case models.RoleSupplier:
		return "Supplier"
	case models.RoleFintech:
		return "Fintech partner"
	default:
		return string(r)
	}
}
