// Package middleware provides the authentication and authorization guards
// composed per-route by the router.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/redact"
	"github.com/serviscore/serviscore-api/internal/service/auth"
	"github.com/serviscore/serviscore-api/internal/store"
)

// AuthMiddleware is the access guard: it validates the bearer token and
// re-resolves the credential against current state on every request, so a
// deactivated or deleted account is rejected even while its token is
// still within its validity window.
type AuthMiddleware struct {
	jwtService  auth.JWTService
	credentials store.CredentialStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, credentials store.CredentialStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		credentials: credentials,
	}
}

// Authenticate validates the JWT from the Authorization header, re-fetches
// the credential by the token's subject, and attaches it to the request
// context for the role gate and handlers downstream.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case auth.ErrInvalidToken, auth.ErrTokenNotYetValid:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		// Re-resolve against current state; the token alone is not trusted.
		// GetByID only sees active rows, so a deactivated credential falls
		// through to the not-found branch here.
		credential, err := m.credentials.GetByID(r.Context(), claims.CredentialID)
		if err != nil {
			if store.IsNotFoundError(err) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve credential for token",
				"error", redact.Error(err),
				"credential_id", claims.CredentialID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.CredentialContextKey, credential)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCredential extracts the authenticated credential from the request context.
// Returns the credential and a boolean indicating if it was found.
func GetCredential(r *http.Request) (*domain.Credential, bool) {
	credential, ok := r.Context().Value(shared.CredentialContextKey).(*domain.Credential)
	return credential, ok
}
