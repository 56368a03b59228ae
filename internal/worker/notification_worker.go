package worker

import (
	"github.com/spec-kit/tailoring-webclient/internal/service"
)

// StartNotificationWorker registers the unread-count refresher on session
// lifecycle events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
