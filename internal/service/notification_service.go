package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/session"
)

// notificationAPI is the slice of the platform client notifications need.
type notificationAPI interface {
	ListNotifications(ctx context.Context, token string, unreadOnly bool, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	NotificationStats(ctx context.Context, token string) (*domain.NotificationStats, error)
	MarkNotificationRead(ctx context.Context, token string, id int64) (*domain.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, token string) error
}

// NotificationService surfaces the notification inbox and keeps a warm
// per-session unread counter refreshed on session events.
type NotificationService struct {
	api        notificationAPI
	store      session.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu     sync.RWMutex
	unread map[string]int
}

// NewNotificationService creates the service.
func NewNotificationService(api notificationAPI, store session.Store, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		api:        api,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		unread:     make(map[string]int),
	}
}

// RegisterHandlers subscribes to session and booking lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSessionCreated, n.warmUnread)
	n.dispatcher.Subscribe(events.EventBookingSubmitted, n.warmUnread)
	n.dispatcher.Subscribe(events.EventSessionCleared, n.handleSessionCleared)
}

// warmUnread refreshes the unread counter after a login or a submitted
// booking, both of which change the inbox. A failure here never blocks
// the triggering action.
func (n *NotificationService) warmUnread(ctx context.Context, event events.Event) error {
	sess, err := n.store.Get(ctx, event.SessionID)
	if err != nil {
		return nil
	}
	count, err := n.api.UnreadCount(ctx, sess.Token)
	if err != nil {
		n.logger.Debug("unread count warmup failed", zap.Error(err))
		return nil
	}
	n.mu.Lock()
	n.unread[event.SessionID] = count
	n.mu.Unlock()
	return nil
}

func (n *NotificationService) handleSessionCleared(_ context.Context, event events.Event) error {
	n.mu.Lock()
	delete(n.unread, event.SessionID)
	n.mu.Unlock()
	return nil
}

// List returns the inbox.
func (n *NotificationService) List(ctx context.Context, token string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	return n.api.ListNotifications(ctx, token, unreadOnly, limit)
}

// UnreadCount returns the live unread counter and refreshes the cache.
func (n *NotificationService) UnreadCount(ctx context.Context, sid, token string) (int, error) {
	count, err := n.api.UnreadCount(ctx, token)
	if err != nil {
		// Fall back to the cached value so the badge degrades instead of
		// erroring the whole dashboard.
		n.mu.RLock()
		cached, ok := n.unread[sid]
		n.mu.RUnlock()
		if ok {
			return cached, nil
		}
		return 0, err
	}
	n.mu.Lock()
	n.unread[sid] = count
	n.mu.Unlock()
	return count, nil
}

// Stats returns inbox statistics.
func (n *NotificationService) Stats(ctx context.Context, token string) (*domain.NotificationStats, error) {
	return n.api.NotificationStats(ctx, token)
}

// MarkRead marks one notification read.
func (n *NotificationService) MarkRead(ctx context.Context, token string, id int64) (*domain.Notification, error) {
	return n.api.MarkNotificationRead(ctx, token, id)
}

// MarkAllRead marks the whole inbox read.
func (n *NotificationService) MarkAllRead(ctx context.Context, token string) error {
	return n.api.MarkAllNotificationsRead(ctx, token)
}
