package api

// RegisterRequest is the request body for POST /auth/register.
// The nested shape mirrors the two halves of the registration saga:
// accessData becomes the credential, userData becomes the profile.
type RegisterRequest struct {
	AccessData AccessData `json:"accessData" validate:"required"`
	UserData   UserData   `json:"userData"   validate:"required"`
}

// AccessData carries the credential fields of a registration.
// RoleID is optional; omitting it selects the basic user role. IsActive
// is optional and defaults to active; a nil pointer tells the default
// apart from an explicit false.
type AccessData struct {
	Email    string `json:"email"    validate:"required,min=8"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	RoleID   int64  `json:"roleId"   validate:"omitempty,gt=0"`
	IsActive *bool  `json:"isActive"`
}

// UserData carries the profile fields of a registration.
type UserData struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,min=8"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is the success body for POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UpdateCredentialRequest is the request body for PATCH /credentials/{id}.
// A blank email is a sentinel no-op, so no validation tag forces it.
type UpdateCredentialRequest struct {
	Email string `json:"email"`
}

// UpdateProfileRequest is the request body for PATCH /profiles/{id}.
// Blank fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
}

// CreateRoleRequest is the request body for POST /roles.
type CreateRoleRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
