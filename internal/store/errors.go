package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrCredentialNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a credential with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when a write violates a foreign key constraint.
	// Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNoUpdate is the sentinel for a blank update: the caller supplied
	// nothing to change and the store performed no write.
	ErrNoUpdate = errors.New("no data to update")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrCredentialNotFound indicates that the requested credential does not
	// exist or is deactivated.
	ErrCredentialNotFound = fmt.Errorf("%w: credential", ErrNotFound)

	// ErrProfileNotFound indicates that the requested profile does not
	// exist or is deactivated.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrRoleNotFound indicates that the requested role does not exist.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a credential with the given email
	// already exists, active or not.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrProfileExists indicates that the credential already has a profile.
	// The credential-profile relationship is one-to-one by constraint.
	ErrProfileExists = fmt.Errorf("%w: profile for credential", ErrDuplicate)

	// ErrRoleExists indicates that a role with the given name already exists.
	ErrRoleExists = fmt.Errorf("%w: role name", ErrDuplicate)

	// ErrInvalidReference indicates a write referenced a row that does not
	// exist (foreign key violation).
	ErrInvalidReference = fmt.Errorf("%w: referenced entity missing", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
