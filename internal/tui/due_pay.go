package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// PayDueModel is the retailer payment screen. It opens with a
// [paySelectedMsg] payload carrying the due picked on the list screen; the
// amount input is prefilled with the full owed sum.
type PayDueModel struct {
	ctx  context.Context
	dues service.DuesService

	due        models.Due
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewPayDueModel(ctx context.Context, dues service.DuesService) *PayDueModel {
	return &PayDueModel{
		ctx:  ctx,
		dues: dues,
	}
}

func (m *PayDueModel) Init() tea.Cmd {
	// Opened without a selected due; nothing to pay.
	return func() tea.Msg { return NavigateTo{Path: "/dues"} }
}

func (m *PayDueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paySelectedMsg:
		m.startForm(msg.due)
		return m, textinput.Blink

	case duePaidMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Path: "/dues"} }
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Path: "/dues"} }
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

			payment, err := m.collectPayment()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdPay(m.due.ID, payment)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PayDueModel) startForm(due models.Due) {
	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.SetValue(strconv.FormatFloat(due.Amount, 'f', 2, 64))
	amount.Width = 40
	amount.Focus()

	method := textinput.New()
	method.Placeholder = "payment method (upi, bank_transfer, cash)"
	method.SetValue("upi")
	method.Width = 40

	m.due = due
	m.inputs = []textinput.Model{amount, method}
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
}

func (m *PayDueModel) collectPayment() (models.PaymentRequest, string) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
	if err != nil || amount <= 0 {
		return models.PaymentRequest{}, "Amount must be a positive number"
	}
	if amount > m.due.Amount {
		return models.PaymentRequest{}, "Amount exceeds the owed sum"
	}

	method := strings.TrimSpace(m.inputs[1].Value())
	if method == "" {
		return models.PaymentRequest{}, "Payment method is required"
	}

	return models.PaymentRequest{
		Amount:        amount,
		PaymentMethod: method,
	}, ""
}

func (m *PayDueModel) cmdPay(id int64, payment models.PaymentRequest) tea.Cmd {
	ctx := m.ctx
	dues := m.dues

	return func() tea.Msg {
		paid, err := dues.Pay(ctx, id, payment)
		return duePaidMsg{due: paid, err: err}
	}
}

func (m *PayDueModel) View() string {
	if len(m.inputs) == 0 {
		return renderPage("PAY DUE", "No due selected", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Supplier      : " + m.due.SupplierName + "\n")
	b.WriteString("Description   : " + m.due.Description + "\n")
	b.WriteString("Owed          : " + formatMoney(m.due.Amount) + "\n")
	b.WriteString("Due date      : " + formatDate(m.due.DueDate) + "\n\n")
	b.WriteString("Amount        : [ " + m.inputs[0].View() + " ]\n")
	b.WriteString("Method        : [ " + m.inputs[1].View() + " ]\n")

	if m.submitting {
		b.WriteString("\n[Paying...]\n")
	} else {
		b.WriteString("\n[Pay]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("PAY DUE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: pay")
}

func (m *PayDueModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PayDueModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
