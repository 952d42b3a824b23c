package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/mocks"
	"github.com/serviscore/serviscore-api/internal/service/auth"
	"github.com/serviscore/serviscore-api/internal/store"
)

func seededCredentialStore(t *testing.T) *mocks.MockCredentialStore {
	t.Helper()

	credentials := mocks.NewMockCredentialStore()
	credentials.Credentials["user@example.com"] = &domain.Credential{
		ID:             1,
		Email:          "user@example.com",
		HashedPassword: "hashed:password123",
		RoleID:         domain.RoleUser,
		IsActive:       true,
	}
	return credentials
}

// hashPrefixVerifier matches the fake hashing scheme used by the mocks.
func hashPrefixVerifier() *mocks.MockPasswordVerifier {
	return &mocks.MockPasswordVerifier{
		CompareFn: func(hashedPassword, password string) error {
			if hashedPassword != "hashed:"+password {
				return errors.New("hash mismatch")
			}
			return nil
		},
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{Token: "signed-token"}
	authenticator := auth.NewAuthenticator(
		seededCredentialStore(t), hashPrefixVerifier(), jwtService, nil)

	token, err := authenticator.Login(context.Background(), "user@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestLogin_FailureIsIndistinguishable(t *testing.T) {
	t.Parallel()

	// Unknown email, wrong password, and a deactivated account must all
	// produce the identical error value so callers cannot probe which
	// emails are registered.
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(credentials *mocks.MockCredentialStore)
	}{
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
		},
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "wrong-password",
		},
		{
			name:     "deactivated account with correct password",
			email:    "user@example.com",
			password: "password123",
			setup: func(credentials *mocks.MockCredentialStore) {
				credentials.Credentials["user@example.com"].IsActive = false
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			credentials := seededCredentialStore(t)
			if tc.setup != nil {
				tc.setup(credentials)
			}
			jwtService := &mocks.MockJWTService{Token: "signed-token"}
			authenticator := auth.NewAuthenticator(
				credentials, hashPrefixVerifier(), jwtService, nil)

			token, err := authenticator.Login(context.Background(), tc.email, tc.password)

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestLogin_StoreFailureIsNotMasked(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialStore()
	credentials.GetByEmailFn = func(ctx context.Context, email string) (*domain.Credential, error) {
		return nil, errors.New("connection refused")
	}
	authenticator := auth.NewAuthenticator(
		credentials, hashPrefixVerifier(), &mocks.MockJWTService{}, nil)

	_, err := authenticator.Login(context.Background(), "user@example.com", "password123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials,
		"infrastructure failures must not be reported as bad credentials")
}

func TestLogin_TokenGenerationFailure(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{Err: errors.New("signing failed")}
	authenticator := auth.NewAuthenticator(
		seededCredentialStore(t), hashPrefixVerifier(), jwtService, nil)

	_, err := authenticator.Login(context.Background(), "user@example.com", "password123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_NotFoundSentinelNeverLeaks(t *testing.T) {
	t.Parallel()

	authenticator := auth.NewAuthenticator(
		seededCredentialStore(t), hashPrefixVerifier(), &mocks.MockJWTService{}, nil)

	_, err := authenticator.Login(context.Background(), "nobody@example.com", "password123")

	assert.NotErrorIs(t, err, store.ErrCredentialNotFound)
}
