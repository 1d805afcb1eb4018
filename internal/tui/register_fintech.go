package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/app"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// FintechRegisterModel is the signup form for fintech partners. It extends
// the common account fields with the registration number, license number, and
// the default credit terms the partner offers.
type FintechRegisterModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewFintechRegisterModel(ctx context.Context, session service.SessionService) *FintechRegisterModel {
	return &FintechRegisterModel{
		ctx:     ctx,
		session: session,
	}
}

func (m *FintechRegisterModel) Init() tea.Cmd {
	fields := make([]textinput.Model, 8)

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
	fields[4].Placeholder = "registration number"
	fields[4].Width = 40

	fields[5] = textinput.New()
	fields[5].Placeholder = "license number"
	fields[5].Width = 40

	fields[6] = textinput.New()
	fields[6].Placeholder = "base credit limit"
	fields[6].Width = 40

	fields[7] = textinput.New()
	fields[7].Placeholder = "interest rate, % p.a."
	fields[7].Width = 40

	m.inputs = fields
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *FintechRegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = failureMessage(m.session, result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Path: "/"} }
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

			form, err := m.collectForm()
			if err != "" {
				m.errMsg = err
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

// collectForm assembles the registration payload, returning a display message
// instead of a form when a field fails to parse.
func (m *FintechRegisterModel) collectForm() (models.RegistrationForm, string) {
	email := strings.TrimSpace(m.inputs[0].Value())
	pass := m.inputs[1].Value()
	if email == "" || pass == "" {
		return models.RegistrationForm{}, app.MsgCredentialsRequired
	}

	business := strings.TrimSpace(m.inputs[2].Value())
	if business == "" {
		return models.RegistrationForm{}, app.MsgBusinessNameRequired
	}

	regNumber := strings.TrimSpace(m.inputs[4].Value())
	license := strings.TrimSpace(m.inputs[5].Value())
	if regNumber == "" || license == "" {
		return models.RegistrationForm{}, app.MsgFintechDetailsRequired
	}

	limit, limitErr := strconv.ParseFloat(strings.TrimSpace(m.inputs[6].Value()), 64)
	rate, rateErr := strconv.ParseFloat(strings.TrimSpace(m.inputs[7].Value()), 64)
	if limitErr != nil || rateErr != nil || limit <= 0 || rate <= 0 {
		return models.RegistrationForm{}, app.MsgFintechTermsRequired
	}

	return models.RegistrationForm{
		User: models.Credentials{
			Email:    email,
			Password: pass,
		},
		Role:         models.RoleFintech,
		BusinessName: business,
		Phone:        strings.TrimSpace(m.inputs[3].Value()),
		Fintech: &models.FintechDetails{
			RegistrationNumber: regNumber,
			LicenseNumber:      license,
			BaseCreditLimit:    limit,
			InterestRate:       rate,
		},
	}, ""
}

func (m *FintechRegisterModel) cmdRegister(form models.RegistrationForm) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return registerResultMsg{err: session.Register(ctx, form)}
	}
}

func (m *FintechRegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Email           : [ " + m.inputs[0].View() + " ]\n")
	b.WriteString("Password        : [ " + m.inputs[1].View() + " ]\n")
	b.WriteString("Business name   : [ " + m.inputs[2].View() + " ]\n")
	b.WriteString("Phone           : [ " + m.inputs[3].View() + " ]\n")
	b.WriteString("Registration no : [ " + m.inputs[4].View() + " ]\n")
	b.WriteString("License no      : [ " + m.inputs[5].View() + " ]\n")
	b.WriteString("Credit limit    : [ " + m.inputs[6].View() + " ]\n")
	b.WriteString("Interest rate   : [ " + m.inputs[7].View() + " ]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("REGISTER FINTECH PARTNER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *FintechRegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *FintechRegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
