package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// MeasurementsHandler manages measurement profiles.
type MeasurementsHandler struct {
	measurements *service.MeasurementService
}

// NewMeasurementsHandler constructs handler.
func NewMeasurementsHandler(measurements *service.MeasurementService) *MeasurementsHandler {
	return &MeasurementsHandler{measurements: measurements}
}

// Create handles POST /measurements.
func (h *MeasurementsHandler) Create(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	var req upstream.MeasurementProfileCreate
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	profile, err := h.measurements.CreateProfile(c.UserContext(), sess.Token, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": profile})
}

// List handles GET /measurements.
func (h *MeasurementsHandler) List(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	profiles, err := h.measurements.ListProfiles(c.UserContext(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profiles})
}

// Get handles GET /measurements/:id.
func (h *MeasurementsHandler) Get(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	profile, err := h.measurements.GetProfile(c.UserContext(), sess.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// Update handles PUT /measurements/:id.
func (h *MeasurementsHandler) Update(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req upstream.MeasurementProfileUpdate
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	profile, err := h.measurements.UpdateProfile(c.UserContext(), sess.Token, id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// AddVersion handles POST /measurements/:id/versions.
func (h *MeasurementsHandler) AddVersion(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req upstream.MeasurementVersionCreate
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	version, err := h.measurements.AddVersion(c.UserContext(), sess.Token, id, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": version})
}

// ListVersions handles GET /measurements/:id/versions.
func (h *MeasurementsHandler) ListVersions(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	versions, err := h.measurements.ListVersions(c.UserContext(), sess.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": versions})
}

// Delete handles DELETE /measurements/:id.
func (h *MeasurementsHandler) Delete(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.measurements.DeleteProfile(c.UserContext(), sess.Token, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "profile deleted"}})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewValidationError("invalid id", nil)
	}
	return id, nil
}
