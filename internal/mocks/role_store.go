package mocks

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/store"
)

// MockRoleStore implements store.RoleStore for testing.
type MockRoleStore struct {
	CreateFn  func(ctx context.Context, role *domain.Role) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Role, error)
	ListFn    func(ctx context.Context) ([]*domain.Role, error)

	Roles  map[int64]*domain.Role
	nextID int64
}

// NewMockRoleStore creates a new mock store pre-seeded with the admin and
// user roles, matching the migration seed data.
func NewMockRoleStore() *MockRoleStore {
	return &MockRoleStore{
		Roles: map[int64]*domain.Role{
			domain.RoleAdmin: {ID: domain.RoleAdmin, Name: "admin", IsActive: true},
			domain.RoleUser:  {ID: domain.RoleUser, Name: "user", IsActive: true},
		},
		nextID: 2,
	}
}

// Create implements the RoleStore interface.
func (m *MockRoleStore) Create(ctx context.Context, role *domain.Role) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, role)
	}

	for _, existing := range m.Roles {
		if existing.Name == role.Name {
			return store.ErrRoleExists
		}
	}

	role.ID = atomic.AddInt64(&m.nextID, 1)
	m.Roles[role.ID] = role
	return nil
}

// GetByID implements the RoleStore interface.
func (m *MockRoleStore) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	role, exists := m.Roles[id]
	if !exists {
		return nil, store.ErrRoleNotFound
	}
	return role, nil
}

// List implements the RoleStore interface.
func (m *MockRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	result := make([]*domain.Role, 0, len(m.Roles))
	for _, role := range m.Roles {
		result = append(result, role)
	}
	return result, nil
}

// WithTx implements the RoleStore interface for transaction support.
func (m *MockRoleStore) WithTx(tx *sql.Tx) store.RoleStore {
	return m
}
