package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// MeasurementVersionCreate is one new revision of body measurements.
type MeasurementVersionCreate struct {
	Measurements  domain.Measurements  `json:"measurements"`
	FitPreference domain.FitPreference `json:"fit_preference"`
	ChangeNotes   string               `json:"change_notes,omitempty"`
}

// MeasurementProfileCreate names a profile and seeds its first version.
type MeasurementProfileCreate struct {
	ProfileName  string                   `json:"profile_name"`
	IsDefault    bool                     `json:"is_default"`
	Measurements MeasurementVersionCreate `json:"measurements"`
}

// MeasurementProfileUpdate renames a profile or toggles its default flag.
type MeasurementProfileUpdate struct {
	ProfileName *string `json:"profile_name,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

// CreateMeasurementProfile creates a profile with its first version.
func (c *Client) CreateMeasurementProfile(ctx context.Context, token string, req MeasurementProfileCreate) (*domain.MeasurementProfile, error) {
	var out domain.MeasurementProfile
	if err := c.doJSON(ctx, http.MethodPost, "/api/measurements", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMeasurementProfiles returns the caller's profiles.
func (c *Client) ListMeasurementProfiles(ctx context.Context, token string) ([]domain.MeasurementProfile, error) {
	var out []domain.MeasurementProfile
	if err := c.doJSON(ctx, http.MethodGet, "/api/measurements", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMeasurementProfile returns one profile.
func (c *Client) GetMeasurementProfile(ctx context.Context, token string, id int64) (*domain.MeasurementProfile, error) {
	var out domain.MeasurementProfile
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/measurements/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMeasurementProfile renames or re-flags a profile.
func (c *Client) UpdateMeasurementProfile(ctx context.Context, token string, id int64, req MeasurementProfileUpdate) (*domain.MeasurementProfile, error) {
	var out domain.MeasurementProfile
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/measurements/%d", id), token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMeasurementVersion appends a new revision to a profile.
func (c *Client) AddMeasurementVersion(ctx context.Context, token string, profileID int64, req MeasurementVersionCreate) (*domain.MeasurementVersion, error) {
	var out domain.MeasurementVersion
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/measurements/%d/versions", profileID), token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMeasurementVersions returns a profile's revision history.
func (c *Client) ListMeasurementVersions(ctx context.Context, token string, profileID int64) ([]domain.MeasurementVersion, error) {
	var out []domain.MeasurementVersion
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/measurements/%d/versions", profileID), token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMeasurementProfile removes a profile.
func (c *Client) DeleteMeasurementProfile(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/measurements/%d", id), token, nil, nil)
}
