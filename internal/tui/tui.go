package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/internal/router"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// ErrUserQuit reports that the user closed the program with Ctrl+C.
var ErrUserQuit = errors.New("quit by user")

// BuildInfo carries the version stamps injected at link time, shown on the
// about overlay.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// TUI owns the Bubble Tea program. All screens share the service layer and
// the route table; the shell model resolves every navigation through the
// latter.
type TUI struct {
	services  *service.Services
	nav       *router.Router
	buildInfo BuildInfo
}

func New(services *service.Services, nav *router.Router, buildInfo BuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		nav:       nav,
		buildInfo: buildInfo,
	}, nil
}

// Run blocks until the user quits. The program opens on the landing path;
// the session check decides whether that lands on the public menu or jumps
// straight to a dashboard.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"/":                 NewWelcomeModel(),
		"/login":            NewLoginModel(ctx, t.services.Session),
		"/register":         NewRegisterModel(ctx, t.services.Session),
		"/register/fintech": NewFintechRegisterModel(ctx, t.services.Session),

		"/dues":     NewDuesModel(ctx, t.services.Session, t.services.Dues),
		"/dues/new": NewNewDueModel(ctx, t.services.Dues),
		"/dues/pay": NewPayDueModel(ctx, t.services.Dues),
	}
	for _, role := range []models.Role{models.RoleRetailer, models.RoleSupplier, models.RoleFintech} {
		pages[role.DashboardPath()] = NewDashboardModel(ctx, t.services.Session, t.services.Dashboard, role)
	}

	root := NewRootModel(ctx, pages, "/", t.services.Session, t.nav, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
