package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/api/dto"
	"github.com/spec-kit/tailoring-webclient/internal/config"
	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// AuthHandler exposes the login, registration and logout endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookies config.SessionConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(auth *service.AuthService, cookies config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if details := validateCredentials(req.Email, req.Password); details != nil {
		return util.NewValidationError("email and password required", details)
	}

	sid, sess, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookies.CookieName,
		Value:    sid,
		Expires:  time.Now().Add(h.cookies.TTL()),
		HTTPOnly: true,
		Secure:   h.cookies.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Role:       string(sess.Role),
		RedirectTo: sess.Role.DefaultLandingPath(),
	}})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid, _ := guard.SessionIDFromContext(c)
	if err := h.auth.Logout(c.UserContext(), sid); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookies.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookies.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	user, err := h.auth.Profile(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.FullName == "" {
		return util.NewValidationError("full name is required", map[string]any{"field": "full_name"})
	}
	if details := validateCredentials(req.Email, req.Password); details != nil {
		return util.NewValidationError("email and password required", details)
	}

	if err := h.auth.Register(c.UserContext(), req.Email, req.Phone, req.FullName, req.Password); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"message": "account created, please log in",
	}})
}

// RegisterTailor handles POST /auth/tailor/register.
func (h *AuthHandler) RegisterTailor(c *fiber.Ctx) error {
	var req dto.TailorRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.FullName == "" {
		return util.NewValidationError("full name is required", map[string]any{"field": "full_name"})
	}
	if details := validateCredentials(req.Email, req.Password); details != nil {
		return util.NewValidationError("email and password required", details)
	}

	resp, err := h.auth.RegisterTailor(c.UserContext(), upstream.TailorRegisterRequest{
		Email:           req.Email,
		Phone:           req.Phone,
		FullName:        req.FullName,
		Password:        req.Password,
		YearsExperience: req.YearsExperience,
		Specialization:  req.Specialization,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

// validateCredentials returns per-field details for inline form errors,
// or nil when the credentials look submittable.
func validateCredentials(email, password string) map[string]any {
	details := map[string]any{}
	if email == "" || !strings.Contains(email, "@") {
		details["email"] = "a valid email is required"
	}
	if password == "" {
		details["password"] = "password is required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
