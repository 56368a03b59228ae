package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/guard"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// DashboardHandler renders the role-specific landing views. These are
// deliberately thin: the guard has already decided the caller may be
// here, so each view just reports who is logged in and where its data
// endpoints live.
type DashboardHandler struct{}

// NewDashboardHandler constructs handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Customer handles GET /dashboard.
func (h *DashboardHandler) Customer(c *fiber.Ctx) error {
	return h.render(c, "customer dashboard", []string{
		"/appointments", "/booking", "/measurements", "/fabrics", "/orders", "/notifications",
	})
}

// Tailor handles GET /tailor.
func (h *DashboardHandler) Tailor(c *fiber.Ctx) error {
	return h.render(c, "tailor dashboard", []string{
		"/appointments", "/orders", "/notifications",
	})
}

// Admin handles GET /admin.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	return h.render(c, "admin dashboard", []string{
		"/appointments", "/orders", "/fabrics", "/notifications",
	})
}

func (h *DashboardHandler) render(c *fiber.Ctx, title string, sections []string) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"view":     title,
		"role":     sess.Role,
		"email":    sess.Email,
		"sections": sections,
	}})
}
