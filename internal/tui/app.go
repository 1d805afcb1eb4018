package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/router"
	"github.com/creditguard/creditguard-client/internal/service"
)

// RootModel is the TUI shell:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) resolves NavigateTo messages against the route table
// 4) delegates all other messages to the active page
//
// Until the session check settles, every navigation is parked and the shell
// renders a checking indicator; the parked path is re-resolved when the
// sessionCheckedMsg arrives.
type RootModel struct {
	ctx     context.Context
	session service.SessionService
	nav     *router.Router

	pages       map[string]tea.Model
	current     tea.Model
	currentPath string
	pendingPath string

	buildInfo     BuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and parks the start path until the session
// check settles.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPath string, session service.SessionService, nav *router.Router, buildInfo BuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		session:     session,
		nav:         nav,
		pages:       pages,
		pendingPath: startPath,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.cmdCheckSession()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.currentPath == "/" {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.open(msg)

	case sessionCheckedMsg:
		if r.pendingPath != "" {
			path := r.pendingPath
			r.pendingPath = ""
			return r.open(NavigateTo{Path: path})
		}
		return r, nil

	case loginResultMsg:
		if msg.err == nil {
			return r.open(NavigateTo{Path: "/"})
		}

	case registerResultMsg:
		if msg.err == nil {
			return r.open(NavigateTo{Path: "/"})
		}

	case logoutDoneMsg:
		return r.open(NavigateTo{Path: "/"})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.pendingPath != "" {
		return renderPage("CREDITGUARD", "Checking session...", "")
	}
	if r.current == nil {
		return renderPage("CREDITGUARD", "", "")
	}
	return r.current.View()
}

// open resolves the navigation and either switches the page, follows a
// redirect, or parks the path until the session check settles. Redirects are
// followed iteratively and a path is never resolved twice per navigation, so
// a route table that sends a path back to itself (a user whose role matches
// no dashboard, for instance) stays on the current page instead of looping.
func (r RootModel) open(nav NavigateTo) (tea.Model, tea.Cmd) {
	path := nav.Path
	visited := map[string]bool{}

	for {
		user, _ := r.session.CurrentUser()
		decision := r.nav.Resolve(path, r.session.State(), user)

		if decision.Kind == router.DecisionWait {
			r.pendingPath = path
			return r, nil
		}
		if decision.Kind != router.DecisionRedirect {
			break
		}
		if visited[path] {
			return r, nil
		}
		visited[path] = true
		path = decision.Target
	}

	next, exists := r.pages[path]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentPath = path

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) cmdCheckSession() tea.Cmd {
	ctx := r.ctx
	session := r.session

	return func() tea.Msg {
		return sessionCheckedMsg{state: session.Init(ctx)}
	}
}
