package store

import (
	"context"
	"database/sql"

	"github.com/serviscore/serviscore-api/internal/domain"
)

// ProfileStore defines the interface for profile persistence.
type ProfileStore interface {
	// Create saves a new profile to the store.
	// It does not verify that the credential ID refers to an existing
	// credential; the registration service guarantees that by call order
	// and the foreign key is the backstop (mapped to ErrInvalidReference).
	// Returns ErrProfileExists if the credential already has a profile.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves an active profile by its ID.
	// Returns ErrProfileNotFound if no active profile has that ID.
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)

	// List returns all active profiles.
	List(ctx context.Context) ([]*domain.Profile, error)

	// Update changes the profile's first and last name.
	// Returns ErrProfileNotFound if the ID does not exist.
	Update(ctx context.Context, id int64, firstName, lastName string) (*domain.Profile, error)

	// ToggleActive flips the profile's active flag and returns the new state.
	// Returns ErrProfileNotFound if the ID does not exist.
	ToggleActive(ctx context.Context, id int64) (bool, error)

	// WithTx returns a ProfileStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ProfileStore
}
