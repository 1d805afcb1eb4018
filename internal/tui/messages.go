package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// NavigateTo asks the root model to open another page. The path is resolved
// against the route table first, so a navigation may end up waiting or being
// redirected instead of landing on Path. An optional Payload is delivered to
// the target page instead of its Init command.
type NavigateTo struct {
	Path    string
	Payload tea.Msg
}

type sessionCheckedMsg struct {
	state service.SessionState
}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	err error
}

type logoutDoneMsg struct{}

type statsLoadedMsg struct {
	err error
}

type duesLoadedMsg struct {
	dues []models.Due
	err  error
}

type dueSavedMsg struct {
	due models.Due
	err error
}

type duePaidMsg struct {
	due models.Due
	err error
}

type paySelectedMsg struct {
	due models.Due
}

type snapshotTickMsg struct{}

type copiedMsg struct{}
