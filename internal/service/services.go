package service

import (
	"github.com/creditguard/creditguard-client/internal/adapter"
	"github.com/creditguard/creditguard-client/internal/events"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/internal/store"
)

// Services bundles the client application services behind one wiring point.
type Services struct {
	Session   SessionService
	Dashboard DashboardService
	Dues      DuesService
}

// NewServices wires the full service layer: session, dashboard, and dues on
// top of the shared gateway, token store, and event channel. The gateway's
// unauthorized hook is bound to session invalidation here, so a 401 on any
// authenticated request signs the user out globally.
func NewServices(tokens store.TokenStore, gateway adapter.Gateway, notifier events.Notifier, log *logger.Logger) *Services {
	sessionSvc := NewSessionService(tokens, gateway, log)
	gateway.SetOnUnauthorized(sessionSvc.Invalidate)

	return &Services{
		Session:   sessionSvc,
		Dashboard: NewDashboardService(gateway, sessionSvc, notifier, log),
		Dues:      NewDuesService(gateway, notifier),
	}
}
