package clinic

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryClinicRepository implements ClinicRepository using in-memory
// storage.
type InMemoryClinicRepository struct {
	mu      sync.RWMutex
	clinics map[uuid.UUID]Clinic
}

// NewInMemoryClinicRepository creates a new in-memory clinic repository
// seeded with the given clinics.
func NewInMemoryClinicRepository(clinics ...Clinic) *InMemoryClinicRepository {
	r := &InMemoryClinicRepository{
		clinics: make(map[uuid.UUID]Clinic),
	}
	for _, c := range clinics {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.clinics[c.ID] = c
	}
	return r
}

func (r *InMemoryClinicRepository) GetClinic(ctx context.Context, id uuid.UUID) (Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clinics[id]
	if !ok {
		return Clinic{}, ErrClinicNotFound
	}
	return c, nil
}

func (r *InMemoryClinicRepository) FindClinics(ctx context.Context) ([]Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Clinic, 0, len(r.clinics))
	for _, c := range r.clinics {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}
