package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// NotificationsHandler surfaces the notification inbox.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List handles GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	unreadOnly := c.QueryBool("unread_only", false)
	limit := c.QueryInt("limit", 50)

	items, err := h.notifications.List(c.UserContext(), sess.Token, unreadOnly, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationsHandler) UnreadCount(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	sid, _ := guard.SessionIDFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	count, err := h.notifications.UnreadCount(c.UserContext(), sid, sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"unread_count": count}})
}

// Stats handles GET /notifications/stats.
func (h *NotificationsHandler) Stats(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	stats, err := h.notifications.Stats(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return util.NewValidationError("invalid notification id", nil)
	}
	item, err := h.notifications.MarkRead(c.UserContext(), sess.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// MarkAllRead handles POST /notifications/mark-all-read.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	if err := h.notifications.MarkAllRead(c.UserContext(), sess.Token); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "all notifications marked read"}})
}
