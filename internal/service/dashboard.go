package service

import (
	"context"
	"sync"

	"github.com/creditguard/creditguard-client/internal/adapter"
	"github.com/creditguard/creditguard-client/internal/events"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/models"
	"github.com/google/uuid"
)

type dashboardService struct {
	gateway adapter.Gateway
	session SessionService
	logger  *logger.Logger

	unsubscribers []func()

	mu       sync.Mutex
	latest   uuid.UUID
	stats    models.DashboardStats
	hasStats bool
	inFlight int
	errMsg   string
}

// NewDashboardService constructs the dashboard data service. It subscribes to
// every domain event type on notifier so that a due being created, updated or
// paid anywhere in the client refetches the numbers without manual action.
func NewDashboardService(gateway adapter.Gateway, session SessionService, notifier events.Notifier, log *logger.Logger) DashboardService {
	d := &dashboardService{gateway: gateway, session: session, logger: log}

	for _, t := range []events.EventType{
		events.DueCreated,
		events.DueUpdated,
		events.PaymentMade,
		events.CreditLimitUpdated,
	} {
		d.unsubscribers = append(d.unsubscribers, notifier.Subscribe(t, d.onEvent))
	}

	return d
}

// onEvent refetches off the publisher's goroutine. Refresh errors surface
// through Err on the next render; an anonymous session makes this a no-op.
func (d *dashboardService) onEvent(ev events.Event) {
	go func() {
		if err := d.Refresh(context.Background()); err != nil {
			d.logger.Debug().Err(err).Str("event", string(ev.Type)).Msg("event-triggered refresh failed")
		}
	}()
}

// Load implements [DashboardService].
func (d *dashboardService) Load(ctx context.Context) error {
	user, ok := d.session.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}

	d.mu.Lock()
	cached := d.hasStats && d.stats.Role == user.Role
	d.mu.Unlock()
	if cached {
		return nil
	}

	return d.Refresh(ctx)
}

// Refresh implements [DashboardService]. The commit step compares the fetch's
// request id against the latest issued one, so when two refreshes overlap and
// the earlier response arrives last, the earlier response is thrown away.
func (d *dashboardService) Refresh(ctx context.Context) error {
	user, ok := d.session.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}

	id := uuid.New()
	d.mu.Lock()
	d.latest = id
	d.inFlight++
	d.mu.Unlock()

	stats, err := d.gateway.DashboardStats(ctx, user.Role)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight--

	if d.latest != id {
		d.logger.Debug().Str("request_id", id.String()).Msg("discarding superseded stats response")
		return nil
	}

	if err != nil {
		// Keep showing the previous snapshot; only the error changes.
		d.errMsg = adapter.Message(err)
		return err
	}

	d.stats = stats
	d.hasStats = true
	d.errMsg = ""
	return nil
}

// Snapshot implements [DashboardService].
func (d *dashboardService) Snapshot() (models.DashboardStats, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats, d.hasStats
}

// Loading implements [DashboardService].
func (d *dashboardService) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight > 0
}

// Err implements [DashboardService].
func (d *dashboardService) Err() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}

// Close implements [DashboardService].
func (d *dashboardService) Close() {
	for _, unsubscribe := range d.unsubscribers {
		unsubscribe()
	}
}
