package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// UnreadCountResponse carries the unread notification counter.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// ListNotifications returns the caller's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, token string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unread_only", "true")
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}

	path := "/api/notifications/"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out []domain.Notification
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadCount returns how many notifications are unread.
func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	var out UnreadCountResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications/unread-count", token, nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// NotificationStats returns inbox statistics.
func (c *Client) NotificationStats(ctx context.Context, token string) (*domain.NotificationStats, error) {
	var out domain.NotificationStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications/stats", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int64) (*domain.Notification, error) {
	var out domain.Notification
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), token, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkAllNotificationsRead marks the whole inbox as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/notifications/mark-all-read", token, nil, nil)
}
