package domain

import "time"

// NotificationChannel enumerates delivery channels.
type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelInApp NotificationChannel = "in_app"
)

// Notification mirrors the platform's notification resource.
type Notification struct {
	ID                  int64               `json:"id"`
	UserID              int64               `json:"user_id"`
	Channel             NotificationChannel `json:"channel"`
	Subject             string              `json:"subject,omitempty"`
	Message             string              `json:"message"`
	Status              string              `json:"status"`
	RelatedResourceType string              `json:"related_resource_type,omitempty"`
	RelatedResourceID   *int64              `json:"related_resource_id,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
}

// NotificationStats summarizes a user's notification inbox.
type NotificationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Email  int `json:"email"`
	InApp  int `json:"in_app"`
	SMS    int `json:"sms"`
}
