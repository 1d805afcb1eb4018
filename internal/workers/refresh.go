// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/internal/service"
)

const defaultRefreshInterval = time.Minute

// refreshWorker periodically refetches the dashboard snapshot while a
// session is authenticated. Ticks during an anonymous session are skipped
// rather than stopping the ticker, so the numbers resume updating right
// after the next sign-in.
type refreshWorker struct {
	dashboard service.DashboardService
	session   service.SessionService
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefreshWorker constructs the dashboard refresh worker. A non-positive
// interval falls back to one minute.
func NewRefreshWorker(dashboard service.DashboardService, session service.SessionService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &refreshWorker{dashboard: dashboard, session: session, interval: interval, logger: log}
}

// Start implements [Worker].
func (w *refreshWorker) Start(ctx context.Context) {
	w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go w.run(ctx, done)
}

func (w *refreshWorker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.session.State() != service.StateAuthenticated {
				continue
			}
			if err := w.dashboard.Refresh(ctx); err != nil {
				w.logger.Debug().Err(err).Msg("scheduled dashboard refresh failed")
			}
		}
	}
}

// Stop implements [Worker].
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
