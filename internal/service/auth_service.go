package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/booking"
	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/session"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// authAPI is the slice of the platform client the auth flow needs.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*upstream.TokenResponse, error)
	Me(ctx context.Context, token string) (*domain.User, error)
	Register(ctx context.Context, req upstream.RegisterRequest) error
	RegisterTailor(ctx context.Context, req upstream.TailorRegisterRequest) (*upstream.MessageResponse, error)
}

// AuthService coordinates login, registration and logout against the
// platform and the local session store.
type AuthService struct {
	api        authAPI
	store      session.Store
	dispatcher events.Dispatcher
	wizards    *booking.Manager
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(api authAPI, store session.Store, dispatcher events.Dispatcher, wizards *booking.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:        api,
		store:      store,
		dispatcher: dispatcher,
		wizards:    wizards,
		logger:     logger,
	}
}

// Login authenticates upstream and, on success, creates a session. A
// failed login never touches the stored session.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	role, ok := domain.ParseRole(resp.Role)
	if !ok {
		s.logger.Error("upstream returned unknown role", zap.String("role", resp.Role))
		return "", nil, util.NewInternalError(nil)
	}

	sess := domain.Session{
		Token:     resp.AccessToken,
		Role:      role,
		Email:     email,
		CreatedAt: time.Now(),
	}
	sid := uuid.NewString()
	if err := s.store.Put(ctx, sid, sess); err != nil {
		return "", nil, util.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSessionCreated,
		SessionID: sid,
		Timestamp: time.Now(),
		Payload:   events.SessionCreatedPayload{Role: role, Email: email},
	})
	return sid, &sess, nil
}

// Logout destroys the session and abandons any in-progress booking flow.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.store.Clear(ctx, sid); err != nil {
		return util.NewInternalError(err)
	}
	if s.wizards != nil {
		s.wizards.Discard(sid)
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSessionCleared,
		SessionID: sid,
		Timestamp: time.Now(),
		Payload:   events.SessionClearedPayload{Reason: "logout"},
	})
	return nil
}

// Profile returns the logged-in user's platform profile.
func (s *AuthService) Profile(ctx context.Context, token string) (*domain.User, error) {
	return s.api.Me(ctx, token)
}

// Register creates a customer account upstream. Registration does not log
// the user in; they proceed to the login form.
func (s *AuthService) Register(ctx context.Context, email, phone, fullName, password string) error {
	if len(password) < 8 {
		return util.NewValidationError("password must be at least 8 characters", map[string]any{"field": "password"})
	}
	return s.api.Register(ctx, upstream.RegisterRequest{
		Email:    email,
		Phone:    phone,
		FullName: fullName,
		Password: password,
	})
}

// RegisterTailor submits a tailor application for admin review.
func (s *AuthService) RegisterTailor(ctx context.Context, req upstream.TailorRegisterRequest) (*upstream.MessageResponse, error) {
	if len(req.Password) < 8 {
		return nil, util.NewValidationError("password must be at least 8 characters", map[string]any{"field": "password"})
	}
	return s.api.RegisterTailor(ctx, req)
}
