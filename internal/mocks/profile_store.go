package mocks

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing.
type MockProfileStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, profile *domain.Profile) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Profile, error)
	ListFn         func(ctx context.Context) ([]*domain.Profile, error)
	UpdateFn       func(ctx context.Context, id int64, firstName, lastName string) (*domain.Profile, error)
	ToggleActiveFn func(ctx context.Context, id int64) (bool, error)

	// Data for default implementation, keyed by profile ID
	Profiles map[int64]*domain.Profile
	nextID   int64
}

// NewMockProfileStore creates a new mock store with initialized defaults.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Profiles: make(map[int64]*domain.Profile),
	}
}

// Create implements the ProfileStore interface. The default enforces the
// one-profile-per-credential rule like the real store's unique index.
func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}

	if err := profile.Validate(); err != nil {
		return err
	}

	for _, existing := range m.Profiles {
		if existing.CredentialID == profile.CredentialID {
			return store.ErrProfileExists
		}
	}

	profile.ID = atomic.AddInt64(&m.nextID, 1)
	m.Profiles[profile.ID] = profile
	return nil
}

// GetByID implements the ProfileStore interface.
func (m *MockProfileStore) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	profile, exists := m.Profiles[id]
	if !exists || !profile.IsActive {
		return nil, store.ErrProfileNotFound
	}
	return profile, nil
}

// List implements the ProfileStore interface.
func (m *MockProfileStore) List(ctx context.Context) ([]*domain.Profile, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	result := make([]*domain.Profile, 0, len(m.Profiles))
	for _, profile := range m.Profiles {
		if profile.IsActive {
			result = append(result, profile)
		}
	}
	return result, nil
}

// Update implements the ProfileStore interface.
func (m *MockProfileStore) Update(
	ctx context.Context,
	id int64,
	firstName, lastName string,
) (*domain.Profile, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, firstName, lastName)
	}

	if firstName == "" && lastName == "" {
		return nil, store.ErrNoUpdate
	}

	profile, exists := m.Profiles[id]
	if !exists {
		return nil, store.ErrProfileNotFound
	}

	if firstName != "" {
		profile.FirstName = firstName
	}
	if lastName != "" {
		profile.LastName = lastName
	}
	profile.UpdatedAt = time.Now().UTC()
	return profile, nil
}

// ToggleActive implements the ProfileStore interface.
func (m *MockProfileStore) ToggleActive(ctx context.Context, id int64) (bool, error) {
	if m.ToggleActiveFn != nil {
		return m.ToggleActiveFn(ctx, id)
	}

	profile, exists := m.Profiles[id]
	if !exists {
		return false, store.ErrProfileNotFound
	}
	profile.IsActive = !profile.IsActive
	return profile.IsActive, nil
}

// WithTx implements the ProfileStore interface for transaction support.
func (m *MockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
