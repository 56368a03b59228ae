package events

import (
	"time"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionCreated   EventType = "session_created"
	EventSessionCleared   EventType = "session_cleared"
	EventBookingSubmitted EventType = "booking_submitted"
)

// Event represents a session or booking lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionCreatedPayload payload.
type SessionCreatedPayload struct {
	Role  domain.Role `json:"role"`
	Email string      `json:"email,omitempty"`
}

// SessionClearedPayload payload.
type SessionClearedPayload struct {
	// Reason is "logout" or "corrupted".
	Reason string `json:"reason"`
}

// BookingSubmittedPayload payload.
type BookingSubmittedPayload struct {
	AppointmentID int64     `json:"appointment_id"`
	TailorID      int64     `json:"tailor_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
}
