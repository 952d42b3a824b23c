package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviscore/serviscore-api/internal/domain"
)

func TestNewProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		firstName    string
		lastName     string
		credentialID int64
		expectedErr  error
	}{
		{
			name:         "valid profile",
			firstName:    "Ada",
			lastName:     "Lovelace",
			credentialID: 1,
		},
		{
			name:         "empty first name",
			firstName:    "",
			lastName:     "Lovelace",
			credentialID: 1,
			expectedErr:  domain.ErrEmptyFirstName,
		},
		{
			name:         "empty last name",
			firstName:    "Ada",
			lastName:     "",
			credentialID: 1,
			expectedErr:  domain.ErrEmptyLastName,
		},
		{
			name:         "first name too long",
			firstName:    strings.Repeat("a", 101),
			lastName:     "Lovelace",
			credentialID: 1,
			expectedErr:  domain.ErrNameTooLong,
		},
		{
			name:         "missing credential link",
			firstName:    "Ada",
			lastName:     "Lovelace",
			credentialID: 0,
			expectedErr:  domain.ErrInvalidCredentialID,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			profile, err := domain.NewProfile(tc.firstName, tc.lastName, tc.credentialID)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, profile)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, profile)
			assert.Equal(t, tc.firstName, profile.FirstName)
			assert.Equal(t, tc.lastName, profile.LastName)
			assert.Equal(t, tc.credentialID, profile.CredentialID)
			assert.True(t, profile.IsActive)
		})
	}
}

func TestNewRole(t *testing.T) {
	t.Parallel()

	role, err := domain.NewRole("moderator")
	require.NoError(t, err)
	assert.Equal(t, "moderator", role.Name)
	assert.True(t, role.IsActive)

	_, err = domain.NewRole("")
	assert.ErrorIs(t, err, domain.ErrEmptyRoleName)
}

func TestDefaultRoleIsUser(t *testing.T) {
	t.Parallel()

	// A credential registered without an explicit role must never come
	// out privileged.
	assert.Equal(t, domain.RoleUser, domain.DefaultRoleID)
	assert.NotEqual(t, domain.RoleAdmin, domain.DefaultRoleID)
}
