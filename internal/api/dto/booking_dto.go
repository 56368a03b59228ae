package dto

// SetDateRequest picks the appointment date, formatted 2006-01-02.
type SetDateRequest struct {
	Date string `json:"date"`
}

// SetTailorRequest picks the tailor whose availability to show.
type SetTailorRequest struct {
	TailorID int64 `json:"tailor_id"`
}

// SelectSlotRequest picks a slot by its RFC3339 start time.
type SelectSlotRequest struct {
	StartTime string `json:"start_time"`
}

// SubmitBookingRequest confirms the wizard's selection.
type SubmitBookingRequest struct {
	AppointmentType string `json:"appointment_type"`
	CustomerNotes   string `json:"customer_notes,omitempty"`
}

// CancelAppointmentRequest cancels a booked appointment.
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

// RescheduleAppointmentRequest moves an appointment, RFC3339 timestamp.
type RescheduleAppointmentRequest struct {
	NewScheduledDate string `json:"new_scheduled_date"`
	Reason           string `json:"reason,omitempty"`
}
