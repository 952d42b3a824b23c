package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/service"
	"github.com/serviscore/serviscore-api/internal/service/auth"
	"github.com/serviscore/serviscore-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expectedCode: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, expectedCode: http.StatusUnauthorized},
		{name: "forbidden", err: domain.ErrForbidden, expectedCode: http.StatusForbidden},
		{name: "credential not found", err: store.ErrCredentialNotFound, expectedCode: http.StatusNotFound},
		{name: "profile not found", err: store.ErrProfileNotFound, expectedCode: http.StatusNotFound},
		{name: "email conflict", err: store.ErrEmailExists, expectedCode: http.StatusConflict},
		{name: "profile conflict", err: store.ErrProfileExists, expectedCode: http.StatusConflict},
		{name: "domain validation", err: domain.ErrPasswordTooShort, expectedCode: http.StatusBadRequest},
		{name: "partial failure", err: service.ErrPartialFailure, expectedCode: http.StatusInternalServerError},
		{name: "registration failure", err: service.ErrRegistrationFailed, expectedCode: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("surprise"), expectedCode: http.StatusInternalServerError},
		{
			name:         "wrapped sentinel keeps its mapping",
			err:          errors.Join(errors.New("context"), store.ErrEmailExists),
			expectedCode: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expectedCode, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverEchoesInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection to 10.0.0.5:5432 refused")
	message := GetSafeErrorMessage(internal)

	assert.NotContains(t, message, "10.0.0.5")
	assert.Equal(t, "An unexpected error occurred", message)
}

func TestGetSafeErrorMessage_PartialFailureIsDistinct(t *testing.T) {
	t.Parallel()

	partial := GetSafeErrorMessage(service.ErrPartialFailure)
	plain := GetSafeErrorMessage(service.ErrRegistrationFailed)

	assert.NotEqual(t, partial, plain)
	assert.NotContains(t, partial, "credential", "no internal identifiers in client messages")
}
