package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviscore/serviscore-api/internal/config"
	"github.com/serviscore/serviscore-api/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-long-enough-for-hs256",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}

func testCredential() *domain.Credential {
	return &domain.Credential{
		ID:       42,
		Email:    "user@example.com",
		RoleID:   domain.RoleUser,
		IsActive: true,
	}
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), testCredential())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.CredentialID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.RoleID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID, "each token gets a unique jti")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	issueTime := time.Now().Add(-2 * time.Hour)
	impl.timeFunc = func() time.Time { return issueTime }

	token, err := svc.GenerateToken(context.Background(), testCredential())
	require.NoError(t, err)

	// Jump past the one hour lifetime plus clock skew.
	impl.timeFunc = time.Now

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WithinClockSkew(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	// Expired one minute ago, inside the two minute leeway.
	issueTime := time.Now().Add(-61 * time.Minute)
	impl.timeFunc = func() time.Time { return issueTime }

	token, err := svc.GenerateToken(context.Background(), testCredential())
	require.NoError(t, err)

	impl.timeFunc = time.Now
	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestJWTService_WrongSigningKey(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-different-secret-key-thats-also-long-enough"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), testCredential())
	require.NoError(t, err)

	_, err = otherSvc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
