// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

// Package router decides which screen a navigation may land on.
//
// The router is a pure component: it holds the route table and turns
// (path, session state, user) into a [Decision]. It performs no I/O and keeps
// no mutable state, so the TUI shell can consult it on every navigation
// message without ordering concerns.
package router

import (
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
)

// Route is one entry of the route table.
type Route struct {
	// Path is the exact navigation path, e.g. "/retailer/dashboard".
	Path string

	// Public marks entry paths reachable without a session. A signed-in
	// user navigating to a public path is redirected to their dashboard.
	Public bool

	// Roles restricts a gated route to specific roles. Empty means any
	// authenticated user.
	Roles []models.Role
}

// DecisionKind classifies the outcome of a resolution.
type DecisionKind int

const (
	// DecisionAllow lets the navigation proceed to the resolved route.
	DecisionAllow DecisionKind = iota

	// DecisionRedirect sends the navigation to Decision.Target instead.
	DecisionRedirect

	// DecisionWait defers the navigation until the session check settles.
	// Redirecting while the stored token is still being verified would
	// bounce a returning user through the login screen for no reason.
	DecisionWait
)

// Decision is the outcome of resolving a navigation.
type Decision struct {
	Kind DecisionKind

	// Route is the matched table entry, set for DecisionAllow.
	Route Route

	// Target is the path to go to instead, set for DecisionRedirect.
	Target string
}

// Router resolves navigation paths against the route table.
type Router struct {
	routes map[string]Route
}

// New returns a Router loaded with the application route table: the public
// entry paths, one gated dashboard per role, and the gated due screens.
func New() *Router {
	table := []Route{
		{Path: "/", Public: true},
		{Path: "/login", Public: true},
		{Path: "/register", Public: true},
		{Path: "/register/fintech", Public: true},

		{Path: models.RoleRetailer.DashboardPath(), Roles: []models.Role{models.RoleRetailer}},
		{Path: models.RoleSupplier.DashboardPath(), Roles: []models.Role{models.RoleSupplier}},
		{Path: models.RoleFintech.DashboardPath(), Roles: []models.Role{models.RoleFintech}},

		{Path: "/dues"},
		{Path: "/dues/new", Roles: []models.Role{models.RoleSupplier}},
		{Path: "/dues/pay", Roles: []models.Role{models.RoleRetailer}},
	}

	routes := make(map[string]Route, len(table))
	for _, r := range table {
		routes[r.Path] = r
	}
	return &Router{routes: routes}
}

// Resolve turns a navigation to path into a [Decision] given the current
// session state and user. Unknown paths redirect to "/"; gated paths reject
// anonymous users and wrong roles to "/login"; while the session check is
// unsettled every navigation waits.
func (r *Router) Resolve(path string, state service.SessionState, user models.User) Decision {
	if state == service.StateUninitialized || state == service.StateChecking {
		return Decision{Kind: DecisionWait}
	}

	route, ok := r.routes[path]
	if !ok {
		return Decision{Kind: DecisionRedirect, Target: "/"}
	}

	authenticated := state == service.StateAuthenticated

	if route.Public {
		if authenticated {
			return Decision{Kind: DecisionRedirect, Target: user.Role.DashboardPath()}
		}
		return Decision{Kind: DecisionAllow, Route: route}
	}

	if !authenticated {
		return Decision{Kind: DecisionRedirect, Target: "/login"}
	}
	if len(route.Roles) > 0 && !roleAllowed(route.Roles, user.Role) {
		return Decision{Kind: DecisionRedirect, Target: "/login"}
	}

	return Decision{Kind: DecisionAllow, Route: route}
}

func roleAllowed(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
