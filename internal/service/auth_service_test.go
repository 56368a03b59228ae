package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	"github.com/spec-kit/tailoring-webclient/internal/session"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

type fakeAuthAPI struct {
	loginResp     *upstream.TokenResponse
	loginErr      error
	registerCalls int
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (*upstream.TokenResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Me(context.Context, string) (*domain.User, error) {
	return &domain.User{ID: 1, Email: "a@b.test", Role: domain.RoleCustomer}, nil
}

func (f *fakeAuthAPI) Register(context.Context, upstream.RegisterRequest) error {
	f.registerCalls++
	return nil
}

func (f *fakeAuthAPI) RegisterTailor(context.Context, upstream.TailorRegisterRequest) (*upstream.MessageResponse, error) {
	return &upstream.MessageResponse{Message: "pending review"}, nil
}

// eventRecorder collects published events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) record(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *eventRecorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newRecorder(dispatcher events.Dispatcher) *eventRecorder {
	rec := &eventRecorder{}
	dispatcher.Subscribe(events.EventSessionCreated, rec.record)
	dispatcher.Subscribe(events.EventSessionCleared, rec.record)
	return rec
}

func TestAuthService_LoginCreatesSession(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()
	rec := newRecorder(dispatcher)
	api := &fakeAuthAPI{loginResp: &upstream.TokenResponse{AccessToken: "tok", Role: "customer"}}
	svc := service.NewAuthService(api, store, dispatcher, nil, zap.NewNop())

	sid, sess, err := svc.Login(context.Background(), "a@b.test", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, sid)
	assert.Equal(t, domain.RoleCustomer, sess.Role)

	stored, err := store.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, "tok", stored.Token)
	assert.Equal(t, "a@b.test", stored.Email)

	assert.Equal(t, []events.EventType{events.EventSessionCreated}, rec.types())
}

func TestAuthService_FailedLoginLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	existing := domain.Session{Token: "old", Role: domain.RoleCustomer}
	require.NoError(t, store.Put(context.Background(), "existing", existing))

	dispatcher := events.NewInMemoryDispatcher()
	rec := newRecorder(dispatcher)
	api := &fakeAuthAPI{loginErr: util.NewUnauthorized("Incorrect email or password")}
	svc := service.NewAuthService(api, store, dispatcher, nil, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "a@b.test", "wrong")
	require.Error(t, err)
	assert.True(t, util.IsUnauthorized(err))

	got, err := store.Get(context.Background(), "existing")
	require.NoError(t, err)
	assert.Equal(t, existing, *got)
	assert.Empty(t, rec.types(), "failed logins publish nothing")
}

func TestAuthService_LoginRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()
	rec := newRecorder(dispatcher)
	api := &fakeAuthAPI{loginResp: &upstream.TokenResponse{AccessToken: "tok", Role: "ghost"}}
	svc := service.NewAuthService(api, store, dispatcher, nil, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "a@b.test", "secret123")
	require.Error(t, err)
	assert.Empty(t, rec.types())
}

func TestAuthService_LogoutClearsAndPublishes(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "sid-1", domain.Session{Token: "tok", Role: domain.RoleCustomer}))
	dispatcher := events.NewInMemoryDispatcher()
	rec := newRecorder(dispatcher)
	svc := service.NewAuthService(&fakeAuthAPI{}, store, dispatcher, nil, zap.NewNop())

	require.NoError(t, svc.Logout(context.Background(), "sid-1"))

	_, err := store.Get(context.Background(), "sid-1")
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.Equal(t, []events.EventType{events.EventSessionCleared}, rec.types())

	// Logging out without a session is a no-op.
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_RegisterRejectsShortPassword(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{}
	svc := service.NewAuthService(api, session.NewMemoryStore(), events.NewInMemoryDispatcher(), nil, zap.NewNop())

	err := svc.Register(context.Background(), "a@b.test", "", "Ada", "short")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", util.ToDomainError(err).Code)
	assert.Zero(t, api.registerCalls, "validation failures never reach the platform")
}
