package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryApplicationRepository implements ApplicationRepository using
// in-memory storage.
type InMemoryApplicationRepository struct {
	mu           sync.RWMutex
	applications map[uuid.UUID]DonationApplication
}

// NewInMemoryApplicationRepository creates a new in-memory application
// repository.
func NewInMemoryApplicationRepository() *InMemoryApplicationRepository {
	return &InMemoryApplicationRepository{
		applications: make(map[uuid.UUID]DonationApplication),
	}
}

func (r *InMemoryApplicationRepository) CreateApplication(ctx context.Context, params CreateApplicationParams) (DonationApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app := DonationApplication{
		ID:                 uuid.New(),
		CitizenID:          params.CitizenID,
		Status:             StatusPending,
		EligibilityAnswers: params.Answers,
		CreatedAt:          time.Now(),
	}
	r.applications[app.ID] = app
	return app, nil
}

func (r *InMemoryApplicationRepository) GetApplication(ctx context.Context, id uuid.UUID) (DonationApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.applications[id]
	if !ok {
		return DonationApplication{}, ErrApplicationNotFound
	}
	return app, nil
}

func (r *InMemoryApplicationRepository) FindApplicationsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]DonationApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []DonationApplication
	for _, app := range r.applications {
		if app.CitizenID == citizenID {
			result = append(result, app)
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func (r *InMemoryApplicationRepository) FindApplications(ctx context.Context) ([]DonationApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]DonationApplication, 0, len(r.applications))
	for _, app := range r.applications {
		result = append(result, app)
	}
	sortByCreatedAt(result)
	return result, nil
}

// DecideApplication checks and updates the status under one lock, matching
// the conditional-update semantics of the PostgreSQL implementation.
func (r *InMemoryApplicationRepository) DecideApplication(ctx context.Context, params DecideApplicationParams) (DonationApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.applications[params.ID]
	if !ok {
		return DonationApplication{}, ErrApplicationNotFound
	}
	if app.Status != StatusPending {
		return DonationApplication{}, ErrInvalidTransition
	}

	now := time.Now()
	reviewedBy := params.ReviewedBy
	app.Status = params.Status
	app.RejectionReason = params.RejectionReason
	app.ReviewedBy = &reviewedBy
	app.ReviewedAt = &now
	r.applications[app.ID] = app
	return app, nil
}

func sortByCreatedAt(apps []DonationApplication) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.Before(apps[j].CreatedAt)
	})
}
