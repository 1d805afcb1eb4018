// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package client assembles the terminal client: the background workers and
// the TUI on top of an already wired service layer.
package client

import (
	"context"
	"errors"

	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/internal/tui"
	"github.com/creditguard/creditguard-client/internal/workers"
)

// App runs the client: it starts the background workers, hands control to
// the TUI, and tears the workers down when the TUI exits.
type App struct {
	services *service.Services
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, ws *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  ws,
		logger:   log,
	}, nil
}

// Run blocks until the user quits. A user-initiated quit is a normal exit,
// not an error.
func (a *App) Run(ctx context.Context) error {
	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}
	defer a.services.Dashboard.Close()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	return err
}
