package clinic

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrClinicNotFound = errors.New("clinic not found")

// ClinicRepository defines the interface for clinic lookups. Clinics are
// reference data: read-only from the workflow's perspective.
type ClinicRepository interface {
	GetClinic(ctx context.Context, id uuid.UUID) (Clinic, error)
	FindClinics(ctx context.Context) ([]Clinic, error)
}
