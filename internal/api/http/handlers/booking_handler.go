package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/api/dto"
	"github.com/spec-kit/tailoring-webclient/internal/booking"
	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/guard"
	"github.com/spec-kit/tailoring-webclient/internal/service"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// BookingHandler drives the appointment wizard over HTTP. Each endpoint
// mutates the session's wizard and returns its fresh snapshot so the view
// always renders the current step.
type BookingHandler struct {
	appointments *service.AppointmentService
}

// NewBookingHandler constructs handler.
func NewBookingHandler(appointments *service.AppointmentService) *BookingHandler {
	return &BookingHandler{appointments: appointments}
}

// wizard resolves the caller's flow from the guard-loaded session.
func (h *BookingHandler) wizard(c *fiber.Ctx) (*booking.Wizard, error) {
	sess, ok := guard.SessionFromContext(c)
	sid, okID := guard.SessionIDFromContext(c)
	if !ok || !okID {
		return nil, util.NewUnauthorized("login required")
	}
	return h.appointments.Wizard(sid, sess.Token), nil
}

// State handles GET /booking.
func (h *BookingHandler) State(c *fiber.Ctx) error {
	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": w.Snapshot()})
}

// Slots handles GET /booking/slots.
func (h *BookingHandler) Slots(c *fiber.Ctx) error {
	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	snap := w.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"state":           snap.State,
		"available_slots": snap.Slots,
	}})
}

// SetDate handles POST /booking/date.
func (h *BookingHandler) SetDate(c *fiber.Ctx) error {
	var req dto.SetDateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return util.NewValidationError("date must be formatted YYYY-MM-DD", map[string]any{"field": "date"})
	}

	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	if err := w.SetDate(date); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": w.Snapshot()})
}

// SetTailor handles POST /booking/tailor.
func (h *BookingHandler) SetTailor(c *fiber.Ctx) error {
	var req dto.SetTailorRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	if err := w.SetTailor(req.TailorID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": w.Snapshot()})
}

// SelectSlot handles POST /booking/slot.
func (h *BookingHandler) SelectSlot(c *fiber.Ctx) error {
	var req dto.SelectSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return util.NewValidationError("start_time must be RFC3339", map[string]any{"field": "start_time"})
	}

	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	if err := w.SelectSlot(start); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": w.Snapshot()})
}

// Back handles POST /booking/back.
func (h *BookingHandler) Back(c *fiber.Ctx) error {
	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	w.Back()
	return c.JSON(fiber.Map{"data": w.Snapshot()})
}

// Reload handles POST /booking/reload, the retry button after a failure.
func (h *BookingHandler) Reload(c *fiber.Ctx) error {
	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	if err := w.Reload(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": w.Snapshot()})
}

// Submit handles POST /booking/submit.
func (h *BookingHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	apptType := domain.AppointmentType(req.AppointmentType)
	if apptType == "" {
		apptType = domain.AppointmentTypeConsultation
	}

	w, err := h.wizard(c)
	if err != nil {
		return err
	}
	appt, err := w.Submit(c.UserContext(), apptType, req.CustomerNotes)
	if err != nil {
		// The wizard already stepped back to slot selection and kicked a
		// re-fetch; surface the failure with the fresh state attached.
		domainErr := util.ToDomainError(err)
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
			"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
			"data":  w.Snapshot(),
		})
	}

	// Submission ends the flow; the next visit starts a fresh wizard.
	if sid, ok := guard.SessionIDFromContext(c); ok {
		h.appointments.NotifySubmitted(c.UserContext(), sid, appt)
		h.appointments.DiscardWizard(sid)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": appt})
}
