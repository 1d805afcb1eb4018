package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

const dueDateLayout = "2006-01-02"

// NewDueModel is the supplier form for recording a purchase on credit
// against a retailer.
type NewDueModel struct {
	ctx  context.Context
	dues service.DuesService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewNewDueModel(ctx context.Context, dues service.DuesService) *NewDueModel {
	return &NewDueModel{
		ctx:  ctx,
		dues: dues,
	}
}

func (m *NewDueModel) Init() tea.Cmd {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "retailer id"
	fields[0].CharLimit = 19
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "amount"
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "description"
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "purchase date (YYYY-MM-DD)"
	fields[3].CharLimit = 10
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "due date (YYYY-MM-DD)"
	fields[4].CharLimit = 10
	fields[4].Width = 40

	m.inputs = fields
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *NewDueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(dueSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Path: "/dues"} }
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

			due, err := m.collectDue()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(due)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *NewDueModel) collectDue() (models.NewDue, string) {
	retailerID, err := strconv.ParseInt(strings.TrimSpace(m.inputs[0].Value()), 10, 64)
	if err != nil || retailerID <= 0 {
		return models.NewDue{}, "Retailer id must be a positive number"
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
	if err != nil || amount <= 0 {
		return models.NewDue{}, "Amount must be a positive number"
	}

	description := strings.TrimSpace(m.inputs[2].Value())
	if description == "" {
		return models.NewDue{}, "Description is required"
	}

	purchaseDate, err := time.Parse(dueDateLayout, strings.TrimSpace(m.inputs[3].Value()))
	if err != nil {
		return models.NewDue{}, "Purchase date must be YYYY-MM-DD"
	}

	dueDate, err := time.Parse(dueDateLayout, strings.TrimSpace(m.inputs[4].Value()))
	if err != nil {
		return models.NewDue{}, "Due date must be YYYY-MM-DD"
	}
	if dueDate.Before(purchaseDate) {
		return models.NewDue{}, "Due date must not precede the purchase date"
	}

	return models.NewDue{
		RetailerID:   retailerID,
		Amount:       amount,
		Description:  description,
		PurchaseDate: purchaseDate,
		DueDate:      dueDate,
	}, ""
}

func (m *NewDueModel) cmdCreate(due models.NewDue) tea.Cmd {
	ctx := m.ctx
	dues := m.dues

	return func() tea.Msg {
		created, err := dues.Create(ctx, due)
		return dueSavedMsg{due: created, err: err}
	}
}

func (m *NewDueModel) View() string {
	var b strings.Builder
	b.WriteString("Retailer id   : [ " + m.inputs[0].View() + " ]\n")
	b.WriteString("Amount        : [ " + m.inputs[1].View() + " ]\n")
	b.WriteString("Description   : [ " + m.inputs[2].View() + " ]\n")
	b.WriteString("Purchase date : [ " + m.inputs[3].View() + " ]\n")
	b.WriteString("Due date      : [ " + m.inputs[4].View() + " ]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("NEW DUE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m *NewDueModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *NewDueModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
