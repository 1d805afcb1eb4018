package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/creditguard/creditguard-client/internal/app"
	"github.com/creditguard/creditguard-client/internal/config"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/models"
	"github.com/go-resty/resty/v2"
)

type httpGateway struct {
	client *resty.Client
	tokens TokenSource

	mu             sync.RWMutex
	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway]. It
// normalises and validates the base URL from adapterCfg.APIAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout. The token for authenticated requests is re-read from
// tokens on every call.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(adapterCfg config.Adapter, tokens TokenSource, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpGateway{client: client, tokens: tokens, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetOnUnauthorized implements [Gateway].
func (h *httpGateway) SetOnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

// Login implements [Gateway]. It POSTs the credentials to POST /auth/login/
// and decodes the token and user from the response body. A 400 or 401 carries
// the server's rejection message; when the body has none, the error text falls
// back to a generic invalid-credentials message.
func (h *httpGateway) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/auth/login/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp, app.MsgInvalidCredentials); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("login response: missing token")
	}
	if !auth.User.Role.Valid() {
		return models.AuthResponse{}, fmt.Errorf("login response: unknown role %q", auth.User.Role)
	}

	return auth, nil
}

// Register implements [Gateway]. It POSTs the registration form to
// POST /auth/register/ and decodes the token and user from the response body.
func (h *httpGateway) Register(ctx context.Context, form models.RegistrationForm) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		SetResult(&auth).
		Post("/auth/register/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp, app.MsgRegistrationFailed); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("register response: missing token")
	}
	if !auth.User.Role.Valid() {
		return models.AuthResponse{}, fmt.Errorf("register response: unknown role %q", auth.User.Role)
	}

	return auth, nil
}

// Logout implements [Gateway]. It POSTs to POST /auth/logout/ with the current
// token so the server can invalidate it. A 401 here does not fire the
// unauthorized hook: the caller is discarding the session anyway.
func (h *httpGateway) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/auth/logout/")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp, "logout failed")
}

// Profile implements [Gateway]. It GETs the user record bound to the current
// token from GET /profile/. Returns [ErrUnauthorized] (wrapped) when the token
// is missing or rejected.
func (h *httpGateway) Profile(ctx context.Context) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.Get("/profile/")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = h.mapAuthedError(resp, "profile lookup failed"); err != nil {
		return models.User{}, err
	}

	var pr models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	if !pr.User.Role.Valid() {
		return models.User{}, fmt.Errorf("profile response: unknown role %q", pr.User.Role)
	}

	return pr.User, nil
}

// DashboardStats implements [Gateway]. It GETs the aggregate figures from
// GET /dashboard/stats/ and decodes the flat role-specific body into the
// section of [models.DashboardStats] matching role. Requires a valid token.
func (h *httpGateway) DashboardStats(ctx context.Context, role models.Role) (models.DashboardStats, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	resp, err := req.Get("/dashboard/stats/")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats request: %w", err)
	}
	if err = h.mapAuthedError(resp, app.MsgStatsLoadFailed); err != nil {
		return models.DashboardStats{}, err
	}

	return decodeStats(role, resp.Body())
}

// decodeStats unmarshals the flat stats body into the role-matching section.
// The server does not echo the role back; it is implied by the authenticated
// user, so the caller supplies it.
func decodeStats(role models.Role, body []byte) (models.DashboardStats, error) {
	stats := models.DashboardStats{Role: role}

	var target any
	switch role {
	case models.RoleRetailer:
		stats.Retailer = &models.RetailerStats{}
		target = stats.Retailer
	case models.RoleSupplier:
		stats.Supplier = &models.SupplierStats{}
		target = stats.Supplier
	case models.RoleFintech:
		stats.Fintech = &models.FintechStats{}
		target = stats.Fintech
	default:
		return models.DashboardStats{}, fmt.Errorf("decode dashboard stats: unknown role %q", role)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return models.DashboardStats{}, fmt.Errorf("decode dashboard stats: %w", err)
	}

	return stats, nil
}

// Dues implements [Gateway]. It GETs the role-scoped due list from GET /dues/.
// Requires a valid token.
func (h *httpGateway) Dues(ctx context.Context) ([]models.Due, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/dues/")
	if err != nil {
		return nil, fmt.Errorf("dues request: %w", err)
	}
	if err = h.mapAuthedError(resp, "failed to load dues"); err != nil {
		return nil, err
	}

	var dues []models.Due
	if err = json.Unmarshal(resp.Body(), &dues); err != nil {
		return nil, fmt.Errorf("decode dues response: %w", err)
	}

	return dues, nil
}

// CreateDue implements [Gateway]. It POSTs the new due to POST /dues/ and
// returns the stored record. Requires a valid token.
func (h *httpGateway) CreateDue(ctx context.Context, due models.NewDue) (models.Due, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Due{}, err
	}

	var created models.Due
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(due).
		SetResult(&created).
		Post("/dues/")
	if err != nil {
		return models.Due{}, fmt.Errorf("create due request: %w", err)
	}
	if err = h.mapAuthedError(resp, "failed to create due"); err != nil {
		return models.Due{}, err
	}

	return created, nil
}

// PayDue implements [Gateway]. It POSTs the payment to POST /dues/{id}/pay/
// and returns the updated record. Requires a valid token.
func (h *httpGateway) PayDue(ctx context.Context, id int64, payment models.PaymentRequest) (models.Due, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Due{}, err
	}

	var updated models.Due
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payment).
		SetResult(&updated).
		Post(fmt.Sprintf("/dues/%d/pay/", id))
	if err != nil {
		return models.Due{}, fmt.Errorf("pay due request: %w", err)
	}
	if err = h.mapAuthedError(resp, "failed to record payment"); err != nil {
		return models.Due{}, err
	}

	return updated, nil
}

// authedRequest prepares a request carrying the current token. The token is
// re-read from the source on every call so a cleared store takes effect
// without restarting the client. A missing token is mapped to
// [ErrUnauthorized] without touching the network.
func (h *httpGateway) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Read(ctx)
	if err != nil || strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: no session token", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// mapAuthedError maps the response like mapHTTPError and additionally fires
// the unauthorized hook on a 401, so the session layer can discard the stored
// token no matter which request exposed the invalidation.
func (h *httpGateway) mapAuthedError(resp *resty.Response, fallback string) error {
	err := mapHTTPError(resp, fallback)
	if errors.Is(err, ErrUnauthorized) {
		h.logger.Debug().
			Str("path", resp.Request.URL).
			Msg("authenticated request rejected with 401")
		h.fireOnUnauthorized()
	}
	return err
}

func (h *httpGateway) fireOnUnauthorized() {
	h.mu.RLock()
	fn := h.onUnauthorized
	h.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
