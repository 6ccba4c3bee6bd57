package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile storage operations.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (Profile, error)
	// GetRole returns the role of the given profile, or ErrProfileNotFound
	// if no profile row exists.
	GetRole(ctx context.Context, id uuid.UUID) (Role, error)
	FindProfiles(ctx context.Context) ([]Profile, error)
}
