package mocks

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/store"
)

// MockCredentialStore implements store.CredentialStore for testing.
type MockCredentialStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, credential *domain.Credential) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Credential, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.Credential, error)
	ListFn         func(ctx context.Context, includeInactive bool) ([]*domain.Credential, error)
	UpdateEmailFn  func(ctx context.Context, id int64, newEmail string) (*domain.Credential, error)
	ToggleActiveFn func(ctx context.Context, id int64) (bool, error)
	HardDeleteFn   func(ctx context.Context, id int64) error

	// Data for default implementation
	Credentials map[string]*domain.Credential
	nextID      int64

	// Counters for asserting on call behavior
	HardDeleteCalls int
}

// NewMockCredentialStore creates a new mock store with initialized defaults.
func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{
		Credentials: make(map[string]*domain.Credential),
	}
}

// Create implements the CredentialStore interface. The default behavior
// assigns an ID and rejects duplicate emails the way the real store does.
func (m *MockCredentialStore) Create(ctx context.Context, credential *domain.Credential) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, credential)
	}

	if err := credential.Validate(); err != nil {
		return err
	}

	if _, exists := m.Credentials[credential.Email]; exists {
		return store.ErrEmailExists
	}

	credential.ID = atomic.AddInt64(&m.nextID, 1)
	credential.HashedPassword = "hashed:" + credential.Password
	credential.Password = ""
	m.Credentials[credential.Email] = credential
	return nil
}

// GetByID implements the CredentialStore interface. Like the real store,
// the default only returns active credentials.
func (m *MockCredentialStore) GetByID(ctx context.Context, id int64) (*domain.Credential, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, credential := range m.Credentials {
		if credential.ID == id && credential.IsActive {
			return credential, nil
		}
	}
	return nil, store.ErrCredentialNotFound
}

// GetByEmail implements the CredentialStore interface.
func (m *MockCredentialStore) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	credential, exists := m.Credentials[email]
	if !exists || !credential.IsActive {
		return nil, store.ErrCredentialNotFound
	}
	return credential, nil
}

// List implements the CredentialStore interface.
func (m *MockCredentialStore) List(ctx context.Context, includeInactive bool) ([]*domain.Credential, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, includeInactive)
	}

	result := make([]*domain.Credential, 0, len(m.Credentials))
	for _, credential := range m.Credentials {
		if includeInactive || credential.IsActive {
			result = append(result, credential)
		}
	}
	return result, nil
}

// UpdateEmail implements the CredentialStore interface.
func (m *MockCredentialStore) UpdateEmail(
	ctx context.Context,
	id int64,
	newEmail string,
) (*domain.Credential, error) {
	if m.UpdateEmailFn != nil {
		return m.UpdateEmailFn(ctx, id, newEmail)
	}

	if newEmail == "" {
		return nil, store.ErrNoUpdate
	}
	if _, exists := m.Credentials[newEmail]; exists {
		return nil, store.ErrEmailExists
	}

	for email, credential := range m.Credentials {
		if credential.ID == id {
			delete(m.Credentials, email)
			credential.Email = newEmail
			m.Credentials[newEmail] = credential
			return credential, nil
		}
	}
	return nil, store.ErrCredentialNotFound
}

// ToggleActive implements the CredentialStore interface.
func (m *MockCredentialStore) ToggleActive(ctx context.Context, id int64) (bool, error) {
	if m.ToggleActiveFn != nil {
		return m.ToggleActiveFn(ctx, id)
	}

	for _, credential := range m.Credentials {
		if credential.ID == id {
			credential.IsActive = !credential.IsActive
			return credential.IsActive, nil
		}
	}
	return false, store.ErrCredentialNotFound
}

// HardDelete implements the CredentialStore interface.
func (m *MockCredentialStore) HardDelete(ctx context.Context, id int64) error {
	m.HardDeleteCalls++
	if m.HardDeleteFn != nil {
		return m.HardDeleteFn(ctx, id)
	}

	for email, credential := range m.Credentials {
		if credential.ID == id {
			delete(m.Credentials, email)
			return nil
		}
	}
	return store.ErrCredentialNotFound
}

// WithTx implements the CredentialStore interface for transaction support.
func (m *MockCredentialStore) WithTx(tx *sql.Tx) store.CredentialStore {
	// For mock purposes, just return the same mock
	return m
}
