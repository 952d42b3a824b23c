package auth

import (
	"context"
	"time"

	"github.com/serviscore/serviscore-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the credential.
	// The payload carries the email, the credential ID as subject, and the
	// role ID, so the role gate can run without a second lookup.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, credential *domain.Credential) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded token payload consumed by the access guard.
type Claims struct {
	// CredentialID is the ID of the credential the token was issued for.
	CredentialID int64 `json:"uid"`

	// Email is the credential's email at issue time. Informational; the
	// guard re-resolves the credential by ID on every request.
	Email string `json:"email"`

	// RoleID is the credential's role at issue time.
	RoleID int64 `json:"role"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
