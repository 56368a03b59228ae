package domain

import "time"

// FitPreference enumerates cut preferences for a measurement version.
type FitPreference string

const (
	FitPreferenceSlim    FitPreference = "slim"
	FitPreferenceRegular FitPreference = "regular"
	FitPreferenceLoose   FitPreference = "loose"
)

// Measurements carries the body measurements of a single version, in
// centimeters. Zero values mean "not taken".
type Measurements struct {
	Neck         float64 `json:"neck,omitempty"`
	Shoulder     float64 `json:"shoulder,omitempty"`
	Chest        float64 `json:"chest,omitempty"`
	Waist        float64 `json:"waist,omitempty"`
	Hip          float64 `json:"hip,omitempty"`
	ArmLength    float64 `json:"arm_length,omitempty"`
	SleeveLength float64 `json:"sleeve_length,omitempty"`
	Inseam       float64 `json:"inseam,omitempty"`
	Outseam      float64 `json:"outseam,omitempty"`
	Thigh        float64 `json:"thigh,omitempty"`
	BackLength   float64 `json:"back_length,omitempty"`
}

// MeasurementVersion is one immutable revision of a profile.
type MeasurementVersion struct {
	ID            int64         `json:"id"`
	ProfileID     int64         `json:"profile_id"`
	VersionNumber int           `json:"version_number"`
	Measurements  Measurements  `json:"measurements"`
	FitPreference FitPreference `json:"fit_preference"`
	ChangeNotes   string        `json:"change_notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// MeasurementProfile groups measurement versions under a customer-chosen name.
type MeasurementProfile struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	ProfileName string    `json:"profile_name"`
	IsDefault   bool      `json:"is_default"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
