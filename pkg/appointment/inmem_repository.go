package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryAppointmentRepository implements AppointmentRepository using
// in-memory storage.
type InMemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]Appointment
	slots        map[string]uuid.UUID // clinic+date+time -> appointment id
}

// NewInMemoryAppointmentRepository creates a new in-memory appointment
// repository.
func NewInMemoryAppointmentRepository() *InMemoryAppointmentRepository {
	return &InMemoryAppointmentRepository{
		appointments: make(map[uuid.UUID]Appointment),
		slots:        make(map[string]uuid.UUID),
	}
}

func slotKey(clinicID uuid.UUID, date time.Time, hhmm string) string {
	return fmt.Sprintf("%s/%s/%s", clinicID, date.Format("2006-01-02"), hhmm)
}

func (r *InMemoryAppointmentRepository) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(params.ClinicID, params.Date, params.Time)
	if _, taken := r.slots[key]; taken {
		return Appointment{}, ErrSlotUnavailable
	}

	now := time.Now()
	appt := Appointment{
		ID:            uuid.New(),
		ApplicationID: params.ApplicationID,
		CitizenID:     params.CitizenID,
		ClinicID:      params.ClinicID,
		Date:          params.Date,
		Time:          params.Time,
		Status:        StatusScheduled,
		Notes:         params.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.appointments[appt.ID] = appt
	r.slots[key] = appt.ID
	return appt, nil
}

func (r *InMemoryAppointmentRepository) GetAppointment(ctx context.Context, id uuid.UUID) (Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.appointments[id]
	if !ok {
		return Appointment{}, ErrAppointmentNotFound
	}
	return appt, nil
}

func (r *InMemoryAppointmentRepository) FindAppointmentsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Appointment
	for _, appt := range r.appointments {
		if appt.CitizenID == citizenID {
			result = append(result, appt)
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func (r *InMemoryAppointmentRepository) FindAppointments(ctx context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Appointment, 0, len(r.appointments))
	for _, appt := range r.appointments {
		result = append(result, appt)
	}
	sortByCreatedAt(result)
	return result, nil
}

func (r *InMemoryAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appointments[id]
	if !ok {
		return Appointment{}, ErrAppointmentNotFound
	}
	if appt.Status != StatusScheduled {
		return Appointment{}, ErrInvalidStatusChange
	}

	appt.Status = status
	appt.UpdatedAt = time.Now()
	r.appointments[id] = appt

	// A cancelled slot can be rebooked.
	if status == StatusCancelled {
		delete(r.slots, slotKey(appt.ClinicID, appt.Date, appt.Time))
	}
	return appt, nil
}

func sortByCreatedAt(appts []Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].CreatedAt.Before(appts[j].CreatedAt)
	})
}
