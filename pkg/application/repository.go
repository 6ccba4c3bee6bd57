package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")

	// ErrInvalidTransition means a review decision targeted an application
	// that is no longer pending. Approved and rejected are terminal, so a
	// concurrent decide that loses the conditional update fails with this
	// error instead of silently overwriting the winner.
	ErrInvalidTransition = errors.New("application is not pending")
)

// ApplicationRepository defines the interface for application storage
// operations.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, params CreateApplicationParams) (DonationApplication, error)
	GetApplication(ctx context.Context, id uuid.UUID) (DonationApplication, error)
	FindApplicationsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]DonationApplication, error)
	FindApplications(ctx context.Context) ([]DonationApplication, error)

	// DecideApplication sets status, reviewer and review timestamp in one
	// atomic update conditioned on the current status still being pending.
	// It returns ErrInvalidTransition when the row exists but has already
	// been decided.
	DecideApplication(ctx context.Context, params DecideApplicationParams) (DonationApplication, error)
}
