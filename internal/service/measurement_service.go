package service

import (
	"context"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// measurementAPI is the slice of the platform client measurements need.
type measurementAPI interface {
	CreateMeasurementProfile(ctx context.Context, token string, req upstream.MeasurementProfileCreate) (*domain.MeasurementProfile, error)
	ListMeasurementProfiles(ctx context.Context, token string) ([]domain.MeasurementProfile, error)
	GetMeasurementProfile(ctx context.Context, token string, id int64) (*domain.MeasurementProfile, error)
	UpdateMeasurementProfile(ctx context.Context, token string, id int64, req upstream.MeasurementProfileUpdate) (*domain.MeasurementProfile, error)
	AddMeasurementVersion(ctx context.Context, token string, profileID int64, req upstream.MeasurementVersionCreate) (*domain.MeasurementVersion, error)
	ListMeasurementVersions(ctx context.Context, token string, profileID int64) ([]domain.MeasurementVersion, error)
	DeleteMeasurementProfile(ctx context.Context, token string, id int64) error
}

// MeasurementService manages measurement profiles and their versions.
type MeasurementService struct {
	api measurementAPI
}

// NewMeasurementService builds the service.
func NewMeasurementService(api measurementAPI) *MeasurementService {
	return &MeasurementService{api: api}
}

// CreateProfile creates a named profile with its first version.
func (s *MeasurementService) CreateProfile(ctx context.Context, token string, req upstream.MeasurementProfileCreate) (*domain.MeasurementProfile, error) {
	if req.ProfileName == "" {
		return nil, util.NewValidationError("profile name is required", map[string]any{"field": "profile_name"})
	}
	return s.api.CreateMeasurementProfile(ctx, token, req)
}

// ListProfiles returns the caller's profiles.
func (s *MeasurementService) ListProfiles(ctx context.Context, token string) ([]domain.MeasurementProfile, error) {
	return s.api.ListMeasurementProfiles(ctx, token)
}

// GetProfile returns one profile.
func (s *MeasurementService) GetProfile(ctx context.Context, token string, id int64) (*domain.MeasurementProfile, error) {
	return s.api.GetMeasurementProfile(ctx, token, id)
}

// UpdateProfile renames a profile or toggles its default flag.
func (s *MeasurementService) UpdateProfile(ctx context.Context, token string, id int64, req upstream.MeasurementProfileUpdate) (*domain.MeasurementProfile, error) {
	return s.api.UpdateMeasurementProfile(ctx, token, id, req)
}

// AddVersion appends a new measurement revision.
func (s *MeasurementService) AddVersion(ctx context.Context, token string, profileID int64, req upstream.MeasurementVersionCreate) (*domain.MeasurementVersion, error) {
	return s.api.AddMeasurementVersion(ctx, token, profileID, req)
}

// ListVersions returns a profile's revision history.
func (s *MeasurementService) ListVersions(ctx context.Context, token string, profileID int64) ([]domain.MeasurementVersion, error) {
	return s.api.ListMeasurementVersions(ctx, token, profileID)
}

// DeleteProfile removes a profile.
func (s *MeasurementService) DeleteProfile(ctx context.Context, token string, id int64) error {
	return s.api.DeleteMeasurementProfile(ctx, token, id)
}
