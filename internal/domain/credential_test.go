package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviscore/serviscore-api/internal/domain"
)

func TestNewCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		email       string
		password    string
		roleID      int64
		expectedErr error
	}{
		{
			name:     "valid credential",
			email:    "user@example.com",
			password: "password123",
			roleID:   domain.RoleUser,
		},
		{
			name:        "empty email",
			email:       "",
			password:    "password123",
			roleID:      domain.RoleUser,
			expectedErr: domain.ErrEmptyEmail,
		},
		{
			name:        "email too short",
			email:       "a@b.c",
			password:    "password123",
			roleID:      domain.RoleUser,
			expectedErr: domain.ErrEmailTooShort,
		},
		{
			name:        "empty password",
			email:       "user@example.com",
			password:    "",
			roleID:      domain.RoleUser,
			expectedErr: domain.ErrEmptyPassword,
		},
		{
			name:        "password too short",
			email:       "user@example.com",
			password:    "short",
			roleID:      domain.RoleUser,
			expectedErr: domain.ErrPasswordTooShort,
		},
		{
			name:        "password too long for bcrypt",
			email:       "user@example.com",
			password:    strings.Repeat("x", 73),
			roleID:      domain.RoleUser,
			expectedErr: domain.ErrPasswordTooLong,
		},
		{
			name:        "invalid role ID",
			email:       "user@example.com",
			password:    "password123",
			roleID:      -1,
			expectedErr: domain.ErrInvalidRoleID,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			credential, err := domain.NewCredential(tc.email, tc.password, tc.roleID)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, credential)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, credential)
			assert.Equal(t, tc.email, credential.Email)
			assert.Equal(t, tc.roleID, credential.RoleID)
			assert.True(t, credential.IsActive)
		})
	}
}

func TestCredentialValidate_AcceptsHashedPassword(t *testing.T) {
	t.Parallel()

	// A credential loaded from storage has only the hash, no plaintext.
	credential := &domain.Credential{
		ID:             1,
		Email:          "user@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		RoleID:         domain.RoleUser,
		IsActive:       true,
	}

	assert.NoError(t, credential.Validate())
}

func TestCredentialJSONNeverExposesSecrets(t *testing.T) {
	t.Parallel()

	credential, err := domain.NewCredential("user@example.com", "password123", domain.RoleUser)
	require.NoError(t, err)
	credential.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"

	serialized := marshalJSON(t, credential)
	assert.NotContains(t, serialized, "password123")
	assert.NotContains(t, serialized, "$2a$10$")
	assert.Contains(t, serialized, "user@example.com")
}
