package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrEmptyEmail              = errors.New("email cannot be empty")
	ErrEmailTooShort           = errors.New("email must be at least 8 characters long")
	ErrEmptyPassword           = errors.New("password cannot be empty")
	ErrPasswordTooShort        = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong         = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword     = errors.New("hashed password cannot be empty")
	ErrInvalidRoleID           = errors.New("role ID must be a positive number")
	ErrInvalidCredentialID     = errors.New("credential ID must be a positive number")
)

// Credential represents an identity record: the login email, the bcrypt
// password hash, and a reference to the role that scopes what the holder
// may do. A credential is never hard-deleted through normal flow; the one
// exception is the registration saga's compensation path.
type Credential struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, only set between intake and hashing
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	RoleID         int64     `json:"role_id"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCredential creates a new Credential with the given email, plaintext
// password, and role. The ID is assigned by the store on insert.
// Returns an error if validation fails.
//
// The plaintext password is carried only until the store hashes it;
// it is never persisted or serialized.
func NewCredential(email, password string, roleID int64) (*Credential, error) {
	now := time.Now().UTC()
	credential := &Credential{
		Email:     email,
		Password:  password,
		RoleID:    roleID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := credential.Validate(); err != nil {
		return nil, err
	}

	return credential, nil
}

// Validate checks if the Credential has valid data.
// The email and password shape checks are deliberately weak (non-empty,
// email >= 8 chars, password 6..72 chars): this is the inherited policy of
// the marketplace system, not a hardening recommendation.
func (c *Credential) Validate() error {
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if len(c.Email) < 8 {
		return ErrEmailTooShort
	}

	if c.RoleID <= 0 {
		return ErrInvalidRoleID
	}

	if c.Password != "" {
		if len(c.Password) < 6 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates input beyond 72 bytes
		if len(c.Password) > 72 {
			return ErrPasswordTooLong
		}
		return nil
	}

	// Without a plaintext password the record must already carry a hash
	// (the case for credentials loaded from the database).
	if c.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
