package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/api/dto"
	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// AppointmentsHandler lists and manages booked appointments.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointments *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

// List handles GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	resp, err := h.appointments.List(c.UserContext(), sess.Token, page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Cancel handles POST /appointments/:id/cancel.
func (h *AppointmentsHandler) Cancel(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return util.NewValidationError("invalid appointment id", nil)
	}

	var req dto.CancelAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := h.appointments.Cancel(c.UserContext(), sess.Token, id, req.CancellationReason); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "appointment cancelled"}})
}

// Reschedule handles POST /appointments/:id/reschedule.
func (h *AppointmentsHandler) Reschedule(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return util.NewUnauthorized("login required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return util.NewValidationError("invalid appointment id", nil)
	}

	var req dto.RescheduleAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	newDate, err := time.Parse(time.RFC3339, req.NewScheduledDate)
	if err != nil {
		return util.NewValidationError("new_scheduled_date must be RFC3339", map[string]any{"field": "new_scheduled_date"})
	}

	appt, err := h.appointments.Reschedule(c.UserContext(), sess.Token, id, newDate, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appt})
}
