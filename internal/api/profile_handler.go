package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/store"
)

// ProfileHandler handles the profile management endpoints.
type ProfileHandler struct {
	profiles  store.ProfileStore
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		validator: validator.New(),
	}
}

// List handles GET /profiles.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list profiles")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profiles)
}

// GetByID handles GET /profiles/{id}.
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid profile ID")
		return
	}

	profile, err := h.profiles.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Update handles PATCH /profiles/{id}.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid profile ID")
		return
	}

	var req UpdateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profiles.Update(r.Context(), id, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, store.ErrNoUpdate) {
			shared.RespondWithJSON(w, r, http.StatusOK,
				shared.MessageResponse{Message: "No data to update"})
			return
		}
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// ToggleActive handles DELETE /profiles/{id}.
func (h *ProfileHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid profile ID")
		return
	}

	isActive, err := h.profiles.ToggleActive(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to toggle profile")
		return
	}

	state := "deactivated"
	if isActive {
		state = "activated"
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: fmt.Sprintf("Profile with id %d has been %s", id, state),
	})
}
