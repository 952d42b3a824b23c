package api

import (
	"errors"
	"net/http"

	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/service"
	"github.com/serviscore/serviscore-api/internal/service/auth"
	"github.com/serviscore/serviscore-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Validation errors
	case isDomainValidationError(err):
		return http.StatusBadRequest

	// Registration failures, including the partial-failure case, are
	// server-side faults as far as the caller is concerned.
	case errors.Is(err, service.ErrPartialFailure),
		errors.Is(err, service.ErrRegistrationFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, domain.ErrForbidden):
		return "Insufficient role"

	case errors.Is(err, store.ErrCredentialNotFound):
		return "Credential not found"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"

	case errors.Is(err, store.ErrRoleNotFound):
		return "Role not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrProfileExists):
		return "Credential already has a profile"

	case errors.Is(err, store.ErrRoleExists):
		return "Role name already exists"

	case errors.Is(err, service.ErrPartialFailure):
		// Distinct from the generic failure: the orphaned credential is an
		// operational concern, but the caller gets no internal identifiers.
		return "Registration failed and cleanup is incomplete; contact support"

	case errors.Is(err, service.ErrRegistrationFailed):
		return "Registration failed"

	case isDomainValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and safe message, logs the
// redacted detail, and writes the response. defaultMessage overrides the
// derived safe message when non-empty and the error is unclassified.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == "An unexpected error occurred" && defaultMessage != "" {
		message = defaultMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// isDomainValidationError reports whether err is one of the domain's
// validation sentinels (all of which are safe to echo to the client).
func isDomainValidationError(err error) bool {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	for _, sentinel := range []error{
		domain.ErrValidation,
		domain.ErrInvalidID,
		domain.ErrEmptyEmail,
		domain.ErrEmailTooShort,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrInvalidRoleID,
		domain.ErrInvalidCredentialID,
		domain.ErrEmptyFirstName,
		domain.ErrEmptyLastName,
		domain.ErrNameTooLong,
		domain.ErrEmptyRoleName,
		store.ErrNoUpdate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
