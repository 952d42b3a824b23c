package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/service"
	"github.com/serviscore/serviscore-api/internal/service/auth"
)

// AuthHandler handles the public authentication endpoints: registration
// and login.
type AuthHandler struct {
	registration  service.RegistrationService
	authenticator auth.Authenticator
	validator     *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	registration service.RegistrationService,
	authenticator auth.Authenticator,
) *AuthHandler {
	return &AuthHandler{
		registration:  registration,
		authenticator: authenticator,
		validator:     validator.New(),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.registration.Register(r.Context(),
		service.AccessInput{
			Email:    req.AccessData.Email,
			Password: req.AccessData.Password,
			RoleID:   req.AccessData.RoleID,
			IsActive: req.AccessData.IsActive,
		},
		service.ProfileInput{
			FirstName: req.UserData.FirstName,
			LastName:  req.UserData.LastName,
		})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, profile)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, err := h.authenticator.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same status and message whether the email is unknown or the
			// password is wrong.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{AccessToken: token})
}
