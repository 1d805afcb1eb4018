// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package router

import (
	"testing"

	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/models"
	"github.com/stretchr/testify/assert"
)

func TestResolve_WaitsWhileSessionUnsettled(t *testing.T) {
	r := New()

	for _, state := range []service.SessionState{service.StateUninitialized, service.StateChecking} {
		t.Run(state.String(), func(t *testing.T) {
			got := r.Resolve("/retailer/dashboard", state, models.User{})
			assert.Equal(t, DecisionWait, got.Kind)

			got = r.Resolve("/login", state, models.User{})
			assert.Equal(t, DecisionWait, got.Kind, "public paths wait too, the redirect target is unknown until settled")
		})
	}
}

func TestResolve_AnonymousOnPublicPaths(t *testing.T) {
	r := New()

	for _, path := range []string{"/", "/login", "/register", "/register/fintech"} {
		got := r.Resolve(path, service.StateAnonymous, models.User{})
		assert.Equal(t, DecisionAllow, got.Kind, path)
		assert.Equal(t, path, got.Route.Path)
	}
}

func TestResolve_AuthenticatedOnPublicPathRedirectsToDashboard(t *testing.T) {
	r := New()
	user := models.User{ID: 1, Role: models.RoleSupplier}

	for _, path := range []string{"/", "/login", "/register", "/register/fintech"} {
		got := r.Resolve(path, service.StateAuthenticated, user)
		assert.Equal(t, DecisionRedirect, got.Kind, path)
		assert.Equal(t, "/supplier/dashboard", got.Target, path)
	}
}

func TestResolve_AnonymousOnGatedPathRedirectsToLogin(t *testing.T) {
	r := New()

	got := r.Resolve("/retailer/dashboard", service.StateAnonymous, models.User{})
	assert.Equal(t, DecisionRedirect, got.Kind)
	assert.Equal(t, "/login", got.Target)
}

func TestResolve_RoleGate(t *testing.T) {
	r := New()
	retailer := models.User{ID: 1, Role: models.RoleRetailer}

	got := r.Resolve("/supplier/dashboard", service.StateAuthenticated, retailer)
	assert.Equal(t, DecisionRedirect, got.Kind)
	assert.Equal(t, "/login", got.Target)

	got = r.Resolve("/retailer/dashboard", service.StateAuthenticated, retailer)
	assert.Equal(t, DecisionAllow, got.Kind)
	assert.Equal(t, "/retailer/dashboard", got.Route.Path)
}

func TestResolve_UnknownPathRedirectsToRoot(t *testing.T) {
	r := New()

	for _, state := range []service.SessionState{service.StateAnonymous, service.StateAuthenticated} {
		got := r.Resolve("/no/such/page", state, models.User{Role: models.RoleRetailer})
		assert.Equal(t, DecisionRedirect, got.Kind, state.String())
		assert.Equal(t, "/", got.Target, state.String())
	}
}

func TestResolve_DueRoutes(t *testing.T) {
	r := New()
	retailer := models.User{ID: 1, Role: models.RoleRetailer}
	supplier := models.User{ID: 2, Role: models.RoleSupplier}

	// Any signed-in role may see the list.
	assert.Equal(t, DecisionAllow, r.Resolve("/dues", service.StateAuthenticated, retailer).Kind)
	assert.Equal(t, DecisionAllow, r.Resolve("/dues", service.StateAuthenticated, supplier).Kind)

	// Recording a due is supplier-only, paying retailer-only.
	assert.Equal(t, DecisionAllow, r.Resolve("/dues/new", service.StateAuthenticated, supplier).Kind)
	assert.Equal(t, DecisionRedirect, r.Resolve("/dues/new", service.StateAuthenticated, retailer).Kind)
	assert.Equal(t, DecisionAllow, r.Resolve("/dues/pay", service.StateAuthenticated, retailer).Kind)
	assert.Equal(t, DecisionRedirect, r.Resolve("/dues/pay", service.StateAuthenticated, supplier).Kind)
}
