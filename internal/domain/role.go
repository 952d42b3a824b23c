package domain

import "errors"

var ErrEmptyRoleName = errors.New("role name cannot be empty")

// Well-known role IDs seeded by migration. A credential created without an
// explicit role gets the basic user role, never admin.
const (
	RoleAdmin int64 = 1
	RoleUser  int64 = 2

	DefaultRoleID = RoleUser
)

// Role is a permission tag referenced by many credentials.
type Role struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// NewRole creates a new Role with the given name.
func NewRole(name string) (*Role, error) {
	role := &Role{
		Name:     name,
		IsActive: true,
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	return role, nil
}

// Validate checks if the Role has valid data.
func (r *Role) Validate() error {
	if r.Name == "" {
		return ErrEmptyRoleName
	}
	return nil
}
