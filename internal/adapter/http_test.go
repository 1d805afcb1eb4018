// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creditguard/creditguard-client/internal/config"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Read(context.Context) (string, error) { return s.token, s.err }

func newTestGateway(t *testing.T, serverURL string, tokens TokenSource) *httpGateway {
	t.Helper()
	adapterCfg := config.Adapter{APIAddress: serverURL, RequestTimeout: 5 * time.Second}

	g, err := NewHTTPGateway(adapterCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return g.(*httpGateway)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.AuthResponse{
		Token: "sometoken",
		User:  models.User{ID: 1, Email: "alice@shop.example", Role: models.RoleRetailer},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	got, err := g.Login(context.Background(), models.Credentials{Email: "alice@shop.example", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.User.Email, got.User.Email)
	assert.Equal(t, models.RoleRetailer, got.User.Role)
}

func TestLogin_UnknownRoleRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"sometoken","user":{"id":1,"email":"alice@shop.example","user_type":"ghost"}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	_, err := g.Login(context.Background(), models.Credentials{Email: "alice@shop.example", Password: "secret"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "ghost"`)
}

func TestLogin_UnauthorizedKeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"account suspended"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	_, err := g.Login(context.Background(), models.Credentials{Email: "alice@shop.example"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "account suspended")
}

func TestLogin_UnauthorizedEmptyBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	_, err := g.Login(context.Background(), models.Credentials{Email: "alice@shop.example"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestLogin_401DoesNotFireUnauthorizedHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	fired := false
	g.SetOnUnauthorized(func() { fired = true })

	_, err := g.Login(context.Background(), models.Credentials{Email: "alice@shop.example"})

	require.Error(t, err)
	assert.False(t, fired)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	want := models.AuthResponse{
		Token: "sometoken",
		User:  models.User{ID: 7, Email: "mill@supply.example", Role: models.RoleSupplier},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register/", r.URL.Path)

		var form models.RegistrationForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, models.RoleSupplier, form.Role)
		assert.Equal(t, "Mill Supply Co", form.BusinessName)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	got, err := g.Register(context.Background(), models.RegistrationForm{
		User:         models.Credentials{Email: "mill@supply.example", Password: "secret"},
		Role:         models.RoleSupplier,
		BusinessName: "Mill Supply Co",
	})

	require.NoError(t, err)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.User.ID, got.User.ID)
}

func TestRegister_BadRequestKeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"email already registered"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	_, err := g.Register(context.Background(), models.RegistrationForm{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestRegister_BadRequestEmptyBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	_, err := g.Register(context.Background(), models.RegistrationForm{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Registration failed")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_SendsTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/logout/", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	require.NoError(t, g.Logout(context.Background()))
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	want := models.ProfileResponse{
		User: models.User{ID: 1, Email: "alice@shop.example", Role: models.RoleRetailer, BusinessName: "Alice Stores"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/profile/", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	got, err := g.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want.User, got)
}

func TestProfile_UnknownRoleRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"user":{"id":1,"email":"alice@shop.example","user_type":"ghost"}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	_, err := g.Profile(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "ghost"`)
}

func TestProfile_NoTokenSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server without a token")
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{})
	_, err := g.Profile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProfile_401FiresUnauthorizedHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "stale"})
	fired := false
	g.SetOnUnauthorized(func() { fired = true })

	_, err := g.Profile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, fired)
}

// ── DashboardStats ───────────────────────────────────────────────────────────

func TestDashboardStats_Retailer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"credit_limit": 50000,
			"available_credit": 32000,
			"credit_score": 710,
			"total_due": 18000,
			"due_today": 2500,
			"overdue_amount": 1200
		}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	got, err := g.DashboardStats(context.Background(), models.RoleRetailer)

	require.NoError(t, err)
	assert.Equal(t, models.RoleRetailer, got.Role)
	require.NotNil(t, got.Retailer)
	assert.Nil(t, got.Supplier)
	assert.Nil(t, got.Fintech)
	assert.Equal(t, 50000.0, got.Retailer.CreditLimit)
	assert.Equal(t, 710, got.Retailer.CreditScore)
}

func TestDashboardStats_Fintech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"total_credit_extended": 2500000,
			"active_retailers": 41,
			"pending_assessments": 6,
			"average_interest_rate": 14.5,
			"default_rate": 2.1,
			"total_due_amount": 830000
		}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	got, err := g.DashboardStats(context.Background(), models.RoleFintech)

	require.NoError(t, err)
	require.NotNil(t, got.Fintech)
	assert.Equal(t, 41, got.Fintech.ActiveRetailers)
	assert.Equal(t, 14.5, got.Fintech.AverageInterestRate)
}

func TestDashboardStats_UnknownRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	_, err := g.DashboardStats(context.Background(), models.Role("admin"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

// ── Dues ─────────────────────────────────────────────────────────────────────

func TestDues_Success(t *testing.T) {
	want := []models.Due{
		{ID: 3, SupplierName: "Mill Supply Co", Amount: 4200, Status: models.DuePending},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/dues/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	got, err := g.Dues(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, models.DuePending, got[0].Status)
}

func TestCreateDue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dues/", r.URL.Path)

		var due models.NewDue
		require.NoError(t, json.NewDecoder(r.Body).Decode(&due))
		assert.Equal(t, int64(12), due.RetailerID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Due{ID: 99, Amount: due.Amount, Status: models.DuePending})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	got, err := g.CreateDue(context.Background(), models.NewDue{RetailerID: 12, Amount: 4200})

	require.NoError(t, err)
	assert.Equal(t, int64(99), got.ID)
	assert.Equal(t, 4200.0, got.Amount)
}

func TestPayDue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dues/42/pay/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Due{ID: 42, Status: models.DuePaid})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	got, err := g.PayDue(context.Background(), 42, models.PaymentRequest{Amount: 4200, PaymentMethod: "upi"})

	require.NoError(t, err)
	assert.Equal(t, models.DuePaid, got.Status)
}

func TestPayDue_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"due not found"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, staticTokens{token: "sometoken"})
	_, err := g.PayDue(context.Background(), 404, models.PaymentRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8000/api", "http://localhost:8000/api", false},
		{"no scheme", "localhost:8000", "http://localhost:8000", false},
		{"trailing slash", "http://localhost:8000/api/", "http://localhost:8000/api", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
