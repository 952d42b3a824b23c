package store

import (
	"context"
	"database/sql"

	"github.com/serviscore/serviscore-api/internal/domain"
)

// RoleStore defines the interface for role persistence.
type RoleStore interface {
	// Create saves a new role.
	// Returns ErrRoleExists if the name is already taken.
	Create(ctx context.Context, role *domain.Role) error

	// GetByID retrieves a role by its ID.
	// Returns ErrRoleNotFound if the role does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Role, error)

	// List returns all roles.
	List(ctx context.Context) ([]*domain.Role, error)

	// WithTx returns a RoleStore bound to the provided transaction.
	WithTx(tx *sql.Tx) RoleStore
}
