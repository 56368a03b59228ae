package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// AvailabilityResponse wraps the slot list for one (tailor, branch, date).
type AvailabilityResponse struct {
	Date           time.Time     `json:"date"`
	BranchID       int64         `json:"branch_id"`
	AvailableSlots []domain.Slot `json:"available_slots"`
}

// AppointmentCreateRequest is the booking submission payload.
type AppointmentCreateRequest struct {
	TailorID        int64                  `json:"tailor_id"`
	BranchID        int64                  `json:"branch_id"`
	AppointmentType domain.AppointmentType `json:"appointment_type"`
	ScheduledDate   time.Time              `json:"scheduled_date"`
	DurationMinutes int                    `json:"duration_minutes"`
	CustomerNotes   string                 `json:"customer_notes,omitempty"`
}

// AppointmentListResponse is a paginated appointment listing.
type AppointmentListResponse struct {
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	Appointments []domain.Appointment `json:"appointments"`
}

// Availability fetches the slot grid for a tailor on a given date.
func (c *Client) Availability(ctx context.Context, token string, tailorID, branchID int64, date time.Time) ([]domain.Slot, error) {
	q := url.Values{}
	q.Set("tailor_id", fmt.Sprintf("%d", tailorID))
	q.Set("branch_id", fmt.Sprintf("%d", branchID))
	q.Set("date", date.Format(time.RFC3339))

	var out AvailabilityResponse
	err := c.doJSON(ctx, http.MethodGet, "/api/appointments/availability/slots?"+q.Encode(), token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.AvailableSlots, nil
}

// CreateAppointment submits a booking. A 409 from the platform means the
// slot was taken concurrently and surfaces as a conflict error.
func (c *Client) CreateAppointment(ctx context.Context, token string, req AppointmentCreateRequest) (*domain.Appointment, error) {
	var out domain.Appointment
	err := c.doJSON(ctx, http.MethodPost, "/api/appointments", token, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAppointments returns the caller's appointments.
func (c *Client) ListAppointments(ctx context.Context, token string, page, pageSize int) (*AppointmentListResponse, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("page_size", fmt.Sprintf("%d", pageSize))

	var out AppointmentListResponse
	err := c.doJSON(ctx, http.MethodGet, "/api/appointments?"+q.Encode(), token, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelAppointment cancels with a reason.
func (c *Client) CancelAppointment(ctx context.Context, token string, id int64, reason string) error {
	body := map[string]string{"cancellation_reason": reason}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/appointments/%d/cancel", id), token, body, nil)
}

// RescheduleAppointment moves an appointment to a new time.
func (c *Client) RescheduleAppointment(ctx context.Context, token string, id int64, newDate time.Time, reason string) (*domain.Appointment, error) {
	body := map[string]any{
		"new_scheduled_date": newDate,
		"reason":             reason,
	}
	var out domain.Appointment
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/appointments/%d/reschedule", id), token, body, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
