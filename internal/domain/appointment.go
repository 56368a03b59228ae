package domain

import "time"

// AppointmentStatus enumerates lifecycle states for appointments.
type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// AppointmentType enumerates what the visit is for.
type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeMeasurement  AppointmentType = "measurement"
	AppointmentTypeFitting      AppointmentType = "fitting"
	AppointmentTypePickup       AppointmentType = "pickup"
)

// Slot is a schedulable time interval offered by a tailor.
type Slot struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	TailorID    int64     `json:"tailor_id"`
	TailorName  string    `json:"tailor_name"`
	IsAvailable bool      `json:"is_available"`
}

// Label formats the slot start for display, e.g. "10:00".
func (s Slot) Label() string {
	return s.StartTime.Format("15:04")
}

// Appointment mirrors the platform's appointment resource.
type Appointment struct {
	ID              int64             `json:"id"`
	CustomerID      int64             `json:"customer_id"`
	TailorID        int64             `json:"tailor_id"`
	BranchID        int64             `json:"branch_id"`
	AppointmentType AppointmentType   `json:"appointment_type"`
	ScheduledDate   time.Time         `json:"scheduled_date"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	CustomerNotes   string            `json:"customer_notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
