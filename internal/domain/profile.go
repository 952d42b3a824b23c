package domain

import (
	"errors"
	"time"
)

var (
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrNameTooLong    = errors.New("name must be at most 100 characters long")
)

// Profile is the user-facing identity record. Each profile belongs to
// exactly one credential; a credential has at most one profile, enforced
// by a unique constraint on credential_id.
type Profile struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CredentialID int64     `json:"credential_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile creates a new Profile linked to the given credential.
// The ID is assigned by the store on insert.
func NewProfile(firstName, lastName string, credentialID int64) (*Profile, error) {
	now := time.Now().UTC()
	profile := &Profile{
		FirstName:    firstName,
		LastName:     lastName,
		CredentialID: credentialID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.FirstName == "" {
		return ErrEmptyFirstName
	}
	if p.LastName == "" {
		return ErrEmptyLastName
	}
	if len(p.FirstName) > 100 || len(p.LastName) > 100 {
		return ErrNameTooLong
	}
	if p.CredentialID <= 0 {
		return ErrInvalidCredentialID
	}
	return nil
}
