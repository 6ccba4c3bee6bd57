package appointment

import (
	"context"

	"github.com/google/uuid"
)

// AppointmentRepository defines the interface for appointment storage
// operations.
type AppointmentRepository interface {
	// CreateAppointment books a slot in the scheduled status. It returns
	// ErrSlotUnavailable when the clinic slot is already taken.
	CreateAppointment(ctx context.Context, params CreateAppointmentParams) (Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (Appointment, error)
	FindAppointmentsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]Appointment, error)
	FindAppointments(ctx context.Context) ([]Appointment, error)

	// UpdateStatus advances an appointment out of scheduled. The update is
	// conditioned on the current status still being scheduled; it returns
	// ErrInvalidStatusChange otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Appointment, error)
}
