package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviscore/serviscore-api/internal/api"
	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/mocks"
	"github.com/serviscore/serviscore-api/internal/service"
	"github.com/serviscore/serviscore-api/internal/service/auth"
)

type authHandlerFixture struct {
	handler     *api.AuthHandler
	credentials *mocks.MockCredentialStore
	profiles    *mocks.MockProfileStore
}

func newAuthHandlerFixture() *authHandlerFixture {
	credentials := mocks.NewMockCredentialStore()
	profiles := mocks.NewMockProfileStore()
	registration := service.NewRegistrationService(credentials, profiles, nil)

	verifier := &mocks.MockPasswordVerifier{
		CompareFn: func(hashedPassword, password string) error {
			if hashedPassword != "hashed:"+password {
				return errors.New("hash mismatch")
			}
			return nil
		},
	}
	jwtService := &mocks.MockJWTService{Token: "signed-token"}
	authenticator := auth.NewAuthenticator(credentials, verifier, jwtService, nil)

	return &authHandlerFixture{
		handler:     api.NewAuthHandler(registration, authenticator),
		credentials: credentials,
		profiles:    profiles,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

const validRegisterBody = `{
	"accessData": {"email": "user@example.com", "password": "password123"},
	"userData": {"first_name": "Ada", "last_name": "Lovelace"}
}`

func TestRegisterHandler_Success(t *testing.T) {
	t.Parallel()

	fixture := newAuthHandlerFixture()
	rec := postJSON(t, fixture.handler.Register, "/auth/register", validRegisterBody)

	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var profile domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Ada", profile.FirstName)
	assert.NotZero(t, profile.CredentialID)

	assert.NotContains(t, rec.Body.String(), "password123",
		"response must never echo the password")
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	t.Parallel()

	fixture := newAuthHandlerFixture()
	rec := postJSON(t, fixture.handler.Register, "/auth/register", validRegisterBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, fixture.handler.Register, "/auth/register", validRegisterBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterHandler_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `this is not json`},
		{name: "unknown field", body: `{"accessData": {}, "userData": {}, "extra": true}`},
		{
			name: "email too short",
			body: `{"accessData": {"email": "a@b.c", "password": "password123"},
				"userData": {"first_name": "Ada", "last_name": "Lovelace"}}`,
		},
		{
			name: "password too short",
			body: `{"accessData": {"email": "user@example.com", "password": "abc"},
				"userData": {"first_name": "Ada", "last_name": "Lovelace"}}`,
		},
		{
			name: "missing profile names",
			body: `{"accessData": {"email": "user@example.com", "password": "password123"},
				"userData": {"first_name": "", "last_name": ""}}`,
		},
		{
			name: "negative role id",
			body: `{"accessData": {"email": "user@example.com", "password": "password123", "roleId": -1},
				"userData": {"first_name": "Ada", "last_name": "Lovelace"}}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fixture := newAuthHandlerFixture()
			rec := postJSON(t, fixture.handler.Register, "/auth/register", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())
			assert.Empty(t, fixture.credentials.Credentials)
		})
	}
}

func TestRegisterHandler_PartialFailure(t *testing.T) {
	t.Parallel()

	fixture := newAuthHandlerFixture()
	fixture.profiles.CreateFn = func(ctx context.Context, profile *domain.Profile) error {
		return errors.New("insert failed")
	}
	fixture.credentials.HardDeleteFn = func(ctx context.Context, id int64) error {
		return errors.New("connection lost")
	}

	rec := postJSON(t, fixture.handler.Register, "/auth/register", validRegisterBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "cleanup is incomplete",
		"partial failure must be distinguishable from a plain failure")
}

func TestLoginHandler_Success(t *testing.T) {
	t.Parallel()

	fixture := newAuthHandlerFixture()
	rec := postJSON(t, fixture.handler.Register, "/auth/register", validRegisterBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, fixture.handler.Login, "/auth/login",
		`{"email": "user@example.com", "password": "password123"}`)

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
}

func TestLoginHandler_FailuresAreUniform(t *testing.T) {
	t.Parallel()

	fixture := newAuthHandlerFixture()
	rec := postJSON(t, fixture.handler.Register, "/auth/register", validRegisterBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknownEmail := postJSON(t, fixture.handler.Login, "/auth/login",
		`{"email": "nobody@example.com", "password": "password123"}`)
	wrongPassword := postJSON(t, fixture.handler.Login, "/auth/login",
		`{"email": "user@example.com", "password": "wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.JSONEq(t, unknownEmail.Body.String(), wrongPassword.Body.String(),
		"unknown email and wrong password must be indistinguishable")
}
