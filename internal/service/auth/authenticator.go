package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/serviscore/serviscore-api/internal/store"
)

// Authenticator verifies email+password logins and issues access tokens.
type Authenticator interface {
	// Login verifies the email and password against the credential store
	// and returns a signed access token. Returns ErrInvalidCredentials for
	// an unknown email, a wrong password, or a deactivated credential;
	// the three cases are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthenticatorImpl implements Authenticator against a credential store.
type AuthenticatorImpl struct {
	credentials store.CredentialStore
	verifier    PasswordVerifier
	jwtService  JWTService
	logger      *slog.Logger
}

var _ Authenticator = (*AuthenticatorImpl)(nil)

// NewAuthenticator creates an Authenticator with the given dependencies.
func NewAuthenticator(
	credentials store.CredentialStore,
	verifier PasswordVerifier,
	jwtService JWTService,
	log *slog.Logger,
) *AuthenticatorImpl {
	if log == nil {
		log = slog.Default()
	}
	return &AuthenticatorImpl{
		credentials: credentials,
		verifier:    verifier,
		jwtService:  jwtService,
		logger:      log.With(slog.String("component", "authenticator")),
	}
}

// Login implements Authenticator.
func (a *AuthenticatorImpl) Login(ctx context.Context, email, password string) (string, error) {
	credential, err := a.credentials.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Lookup miss re-classified: the caller must not learn
			// whether the email exists.
			a.logger.Debug("login attempt for unknown or inactive email")
			return "", ErrInvalidCredentials
		}
		a.logger.Error("failed to look up credential during login",
			"error", err)
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := a.verifier.Compare(credential.HashedPassword, password); err != nil {
		a.logger.Debug("login attempt with wrong password",
			"credential_id", credential.ID)
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(ctx, credential)
	if err != nil {
		a.logger.Error("failed to generate access token",
			"error", err,
			"credential_id", credential.ID)
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("login succeeded",
		"credential_id", credential.ID,
		"role_id", credential.RoleID)

	return token, nil
}
