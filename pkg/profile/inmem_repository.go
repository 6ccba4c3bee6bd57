package profile

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryProfileRepository implements ProfileRepository using in-memory storage.
type InMemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile
}

// NewInMemoryProfileRepository creates a new in-memory profile repository.
func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		profiles: make(map[uuid.UUID]Profile),
	}
}

func (r *InMemoryProfileRepository) CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	p := Profile{
		ID:          id,
		Email:       params.Email,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		PhoneNumber: params.PhoneNumber,
		Area:        params.Area,
		BloodType:   params.BloodType,
		Age:         params.Age,
		Role:        params.Role,
		CreatedAt:   time.Now(),
	}
	r.profiles[p.ID] = p
	return p, nil
}

func (r *InMemoryProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (r *InMemoryProfileRepository) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return "", ErrProfileNotFound
	}
	return p.Role, nil
}

func (r *InMemoryProfileRepository) FindProfiles(ctx context.Context) ([]Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
