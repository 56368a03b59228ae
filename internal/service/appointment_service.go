package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/tailoring-webclient/internal/booking"
	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// appointmentAPI is the slice of the platform client appointments need.
type appointmentAPI interface {
	ListAppointments(ctx context.Context, token string, page, pageSize int) (*upstream.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, token string, id int64, reason string) error
	RescheduleAppointment(ctx context.Context, token string, id int64, newDate time.Time, reason string) (*domain.Appointment, error)
}

// AppointmentService exposes the booking wizard plus appointment listing
// and lifecycle operations.
type AppointmentService struct {
	api        appointmentAPI
	wizards    *booking.Manager
	dispatcher events.Dispatcher
}

// NewAppointmentService builds the service.
func NewAppointmentService(api appointmentAPI, wizards *booking.Manager, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{api: api, wizards: wizards, dispatcher: dispatcher}
}

// Wizard returns the session's booking flow, starting one if needed.
func (s *AppointmentService) Wizard(sid, token string) *booking.Wizard {
	return s.wizards.Get(sid, token)
}

// DiscardWizard abandons the session's flow, e.g. after submission.
func (s *AppointmentService) DiscardWizard(sid string) {
	s.wizards.Discard(sid)
}

// NotifySubmitted announces a completed booking to subscribers.
func (s *AppointmentService) NotifySubmitted(ctx context.Context, sid string, appt *domain.Appointment) {
	if s.dispatcher == nil || appt == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingSubmitted,
		SessionID: sid,
		Timestamp: time.Now(),
		Payload: events.BookingSubmittedPayload{
			AppointmentID: appt.ID,
			TailorID:      appt.TailorID,
			ScheduledDate: appt.ScheduledDate,
		},
	})
}

// List returns the caller's appointments.
func (s *AppointmentService) List(ctx context.Context, token string, page, pageSize int) (*upstream.AppointmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.api.ListAppointments(ctx, token, page, pageSize)
}

// Cancel cancels an appointment with a required reason.
func (s *AppointmentService) Cancel(ctx context.Context, token string, id int64, reason string) error {
	if reason == "" {
		return util.NewValidationError("cancellation reason is required", map[string]any{"field": "cancellation_reason"})
	}
	return s.api.CancelAppointment(ctx, token, id, reason)
}

// Reschedule moves an appointment to a new time.
func (s *AppointmentService) Reschedule(ctx context.Context, token string, id int64, newDate time.Time, reason string) (*domain.Appointment, error) {
	if newDate.Before(time.Now()) {
		return nil, util.NewValidationError("new date must be in the future", map[string]any{"field": "new_scheduled_date"})
	}
	return s.api.RescheduleAppointment(ctx, token, id, newDate, reason)
}
