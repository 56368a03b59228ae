package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	"github.com/spec-kit/tailoring-webclient/internal/session"
)

type fakeNotificationAPI struct {
	count    int
	countErr error
}

func (f *fakeNotificationAPI) ListNotifications(context.Context, string, bool, int) ([]domain.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationAPI) UnreadCount(context.Context, string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeNotificationAPI) NotificationStats(context.Context, string) (*domain.NotificationStats, error) {
	return &domain.NotificationStats{}, nil
}

func (f *fakeNotificationAPI) MarkNotificationRead(context.Context, string, int64) (*domain.Notification, error) {
	return &domain.Notification{}, nil
}

func (f *fakeNotificationAPI) MarkAllNotificationsRead(context.Context, string) error {
	return nil
}

func publishSessionEvent(t *testing.T, dispatcher events.Dispatcher, eventType events.EventType, sid string) {
	t.Helper()
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sid,
		Timestamp: time.Now(),
	}))
}

func TestNotificationService_WarmsCountOnLoginAndServesItOnFailure(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "sid-1", domain.Session{Token: "tok", Role: domain.RoleCustomer}))

	dispatcher := events.NewInMemoryDispatcher()
	api := &fakeNotificationAPI{count: 3}
	svc := service.NewNotificationService(api, store, dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	publishSessionEvent(t, dispatcher, events.EventSessionCreated, "sid-1")

	// Platform goes down; the cached counter keeps the badge alive.
	api.countErr = errors.New("connection refused")
	count, err := svc.UnreadCount(context.Background(), "sid-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNotificationService_UncachedFailureSurfaces(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	api := &fakeNotificationAPI{countErr: errors.New("connection refused")}
	svc := service.NewNotificationService(api, session.NewMemoryStore(), dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	_, err := svc.UnreadCount(context.Background(), "sid-unknown", "tok")
	assert.Error(t, err)
}

func TestNotificationService_SessionClearDropsCache(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "sid-1", domain.Session{Token: "tok", Role: domain.RoleCustomer}))

	dispatcher := events.NewInMemoryDispatcher()
	api := &fakeNotificationAPI{count: 5}
	svc := service.NewNotificationService(api, store, dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	publishSessionEvent(t, dispatcher, events.EventSessionCreated, "sid-1")
	publishSessionEvent(t, dispatcher, events.EventSessionCleared, "sid-1")

	api.countErr = errors.New("connection refused")
	_, err := svc.UnreadCount(context.Background(), "sid-1", "tok")
	assert.Error(t, err, "cleared sessions keep no stale counter around")
}

func TestNotificationService_UnreadCountRefreshesCache(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	api := &fakeNotificationAPI{count: 7}
	svc := service.NewNotificationService(api, session.NewMemoryStore(), dispatcher, zap.NewNop())

	count, err := svc.UnreadCount(context.Background(), "sid-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	api.countErr = errors.New("connection refused")
	count, err = svc.UnreadCount(context.Background(), "sid-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
