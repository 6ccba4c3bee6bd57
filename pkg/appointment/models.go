package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an appointment. Appointments only move
// forward: scheduled may become completed, cancelled or no-show, and those
// three are terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Appointment is a booked donation slot for an approved application. The
// citizen and clinic ids are carried redundantly for query convenience.
type Appointment struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	CitizenID     uuid.UUID `json:"citizen_id"`
	ClinicID      uuid.UUID `json:"clinic_id"`
	Date          time.Time `json:"appointment_date"`
	Time          string    `json:"appointment_time"`
	Status        Status    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateAppointmentParams contains parameters for booking a slot.
type CreateAppointmentParams struct {
	ApplicationID uuid.UUID
	CitizenID     uuid.UUID
	ClinicID      uuid.UUID
	Date          time.Time
	Time          string
	Notes         *string
}
