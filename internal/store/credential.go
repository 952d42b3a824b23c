package store

import (
	"context"
	"database/sql"

	"github.com/serviscore/serviscore-api/internal/domain"
)

// CredentialStore defines the interface for credential persistence.
type CredentialStore interface {
	// Create saves a new credential to the store.
	// It validates the domain Credential and hashes the plaintext password
	// internally; the plaintext is cleared before Create returns.
	// Returns ErrEmailExists if the email is already taken (active or not).
	// Returns validation errors from the domain Credential if data is invalid.
	Create(ctx context.Context, credential *domain.Credential) error

	// GetByID retrieves an active credential by its ID.
	// Returns ErrCredentialNotFound if no active credential has that ID.
	GetByID(ctx context.Context, id int64) (*domain.Credential, error)

	// GetByEmail retrieves an active credential by email.
	// Returns ErrCredentialNotFound if no active credential has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)

	// List returns credentials, active-only or all depending on includeInactive.
	List(ctx context.Context, includeInactive bool) ([]*domain.Credential, error)

	// UpdateEmail changes the credential's email.
	// Returns ErrNoUpdate if newEmail is blank (sentinel no-op).
	// Returns ErrCredentialNotFound if the ID does not exist and
	// ErrEmailExists if the new email is already taken.
	UpdateEmail(ctx context.Context, id int64, newEmail string) (*domain.Credential, error)

	// ToggleActive flips the credential's active flag and returns the new state.
	// Returns ErrCredentialNotFound if the ID does not exist.
	ToggleActive(ctx context.Context, id int64) (bool, error)

	// HardDelete permanently removes the credential row.
	// This exists solely for the registration saga's compensation path;
	// every other deactivation goes through ToggleActive.
	// Returns ErrCredentialNotFound if the ID does not exist.
	HardDelete(ctx context.Context, id int64) error

	// WithTx returns a CredentialStore bound to the provided transaction,
	// so multiple operations can share a single transaction managed by the
	// caller (typically a service).
	WithTx(tx *sql.Tx) CredentialStore
}
