// Package service provides application-level services composing the stores.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to
// HTTP status codes.
var (
	// ErrRegistrationFailed indicates the registration could not complete
	// and the system was restored to a consistent state (no orphan
	// credential remains). API layer maps this to HTTP 500.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrPartialFailure indicates the registration failed after the
	// credential was created AND the compensating hard-delete also failed:
	// an orphaned credential remains. This is never swallowed; callers see
	// it as a distinct error kind so the orphan can be cleaned up.
	// API layer maps this to HTTP 500 with a distinct message.
	ErrPartialFailure = errors.New("registration partially failed: orphaned credential remains")
)
