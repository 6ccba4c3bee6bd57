package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ProfileService provides profile lookup and registration operations.
type ProfileService struct {
	repo ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{
		repo: repo,
	}
}

func (s *ProfileService) CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error) {
	if params.Email == "" {
		return Profile{}, fmt.Errorf("email is required")
	}
	if params.FirstName == "" {
		return Profile{}, fmt.Errorf("first name is required")
	}
	if params.Role == "" {
		params.Role = RoleCitizen
	}
	if !params.Role.Valid() {
		return Profile{}, fmt.Errorf("invalid role: %s", params.Role)
	}
	return s.repo.CreateProfile(ctx, params)
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (Profile, error) {
	return s.repo.GetProfile(ctx, id)
}

func (s *ProfileService) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	return s.repo.GetRole(ctx, id)
}

func (s *ProfileService) FindProfiles(ctx context.Context) ([]Profile, error) {
	return s.repo.FindProfiles(ctx)
}
