package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/creditguard/creditguard-client/internal/adapter"
	"github.com/creditguard/creditguard-client/internal/app"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/internal/store"
	"github.com/creditguard/creditguard-client/models"
)

type sessionService struct {
	tokens  store.TokenStore
	gateway adapter.Gateway
	logger  *logger.Logger

	mu       sync.Mutex
	state    SessionState
	user     models.User
	errMsg   string
	inFlight bool
}

// NewSessionService constructs the session lifecycle service on top of the
// token store and the server gateway. The caller is expected to wire the
// returned service into the gateway's unauthorized hook and then call Init
// exactly once at startup.
func NewSessionService(tokens store.TokenStore, gateway adapter.Gateway, log *logger.Logger) SessionService {
	return &sessionService{
		tokens:  tokens,
		gateway: gateway,
		logger:  log,
		state:   StateUninitialized,
	}
}

// Init implements [SessionService].
func (s *sessionService) Init(ctx context.Context) SessionState {
	s.mu.Lock()
	if s.state != StateUninitialized {
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.state = StateChecking
	s.mu.Unlock()

	token, err := s.tokens.Read(ctx)
	if err != nil || strings.TrimSpace(token) == "" {
		if err != nil && !errors.Is(err, store.ErrNoToken) {
			s.logger.Warn().Err(err).Msg("session init: token read failed")
		}
		return s.settle(StateAnonymous, models.User{})
	}

	user, err := s.gateway.Profile(ctx)
	if err != nil {
		s.logger.Info().Err(err).Msg("session init: stored token rejected")
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.logger.Warn().Err(clearErr).Msg("session init: token clear failed")
		}
		return s.settle(StateAnonymous, models.User{})
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("user_type", user.Role.String()).
		Msg("session restored")
	return s.settle(StateAuthenticated, user)
}

func (s *sessionService) settle(state SessionState, user models.User) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
	return state
}

// Login implements [SessionService].
func (s *sessionService) Login(ctx context.Context, creds models.Credentials) error {
	if err := s.beginAuth(); err != nil {
		return err
	}
	defer s.endAuth()

	auth, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.fail(adapter.Message(err))
		return err
	}

	s.establish(ctx, auth)
	return nil
}

// Register implements [SessionService]. Validation failures never reach the
// network.
func (s *sessionService) Register(ctx context.Context, form models.RegistrationForm) error {
	if msg, ok := validateRegistration(form); !ok {
		s.fail(msg)
		return fmt.Errorf("%w: %s", ErrInvalidRegistration, msg)
	}

	if err := s.beginAuth(); err != nil {
		return err
	}
	defer s.endAuth()

	auth, err := s.gateway.Register(ctx, form)
	if err != nil {
		s.fail(adapter.Message(err))
		return err
	}

	s.establish(ctx, auth)
	return nil
}

// beginAuth acquires the single authentication slot. Auth is rejected until
// Init has settled so a user-initiated login cannot race the startup check.
func (s *sessionService) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateUninitialized, StateChecking:
		s.errMsg = app.MsgSessionCheckPending
		return ErrSessionNotReady
	}
	if s.inFlight {
		s.errMsg = app.MsgAuthInProgress
		return ErrAuthInProgress
	}

	s.inFlight = true
	s.errMsg = ""
	return nil
}

func (s *sessionService) endAuth() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// establish persists the token and flips the session to authenticated. A
// persistence failure is logged but does not fail the sign-in: the session is
// valid for this process either way, it just will not survive a restart.
func (s *sessionService) establish(ctx context.Context, auth models.AuthResponse) {
	if err := s.tokens.Save(ctx, auth.Token); err != nil {
		s.logger.Warn().Err(err).Msg("session: token save failed")
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = auth.User
	s.errMsg = ""
	s.mu.Unlock()

	s.logger.Info().
		Int64("user_id", auth.User.ID).
		Str("user_type", auth.User.Role.String()).
		Msg("session established")
}

func (s *sessionService) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

// Logout implements [SessionService].
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("session: server logout failed, discarding local session anyway")
	}

	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("session: token clear failed")
	}

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = models.User{}
	s.errMsg = ""
	s.mu.Unlock()

	return nil
}

// Invalidate implements [SessionService].
func (s *sessionService) Invalidate() {
	s.mu.Lock()
	alreadyAnonymous := s.state == StateAnonymous
	s.state = StateAnonymous
	s.user = models.User{}
	s.mu.Unlock()

	if err := s.tokens.Clear(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("session: token clear failed")
	}
	if !alreadyAnonymous {
		s.logger.Info().Msg("session invalidated by server rejection")
	}
}

// State implements [SessionService].
func (s *sessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser implements [SessionService].
func (s *sessionService) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return models.User{}, false
	}
	return s.user, true
}

// Err implements [SessionService].
func (s *sessionService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// validateRegistration checks the form client-side. It returns ok=false with
// the field-level display message for the first violated rule.
func validateRegistration(form models.RegistrationForm) (string, bool) {
	if strings.TrimSpace(form.User.Email) == "" || form.User.Password == "" {
		return app.MsgCredentialsRequired, false
	}
	if strings.TrimSpace(form.BusinessName) == "" {
		return app.MsgBusinessNameRequired, false
	}
	if !form.Role.Valid() {
		return app.MsgInvalidRole, false
	}

	if form.Role == models.RoleFintech {
		f := form.Fintech
		if f == nil || strings.TrimSpace(f.RegistrationNumber) == "" || strings.TrimSpace(f.LicenseNumber) == "" {
			return app.MsgFintechDetailsRequired, false
		}
		if f.BaseCreditLimit <= 0 || f.InterestRate <= 0 {
			return app.MsgFintechTermsRequired, false
		}
	}

	return "", true
}
