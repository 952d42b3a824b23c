package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/store"
)

// CredentialHandler handles the admin credential management endpoints.
type CredentialHandler struct {
	credentials store.CredentialStore
	validator   *validator.Validate
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(credentials store.CredentialStore) *CredentialHandler {
	return &CredentialHandler{
		credentials: credentials,
		validator:   validator.New(),
	}
}

// ListActive handles GET /credentials.
func (h *CredentialHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.credentials.List(r.Context(), false)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list credentials")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, credentials)
}

// ListAll handles GET /credentials/all, including deactivated records.
func (h *CredentialHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.credentials.List(r.Context(), true)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list credentials")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, credentials)
}

// GetByID handles GET /credentials/{id}.
func (h *CredentialHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid credential ID")
		return
	}

	credential, err := h.credentials.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get credential")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, credential)
}

// GetByEmail handles GET /credentials/email/{email}.
func (h *CredentialHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	credential, err := h.credentials.GetByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get credential")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, credential)
}

// UpdateEmail handles PATCH /credentials/{id}.
// A blank email in the body is the store's sentinel no-op and yields a
// 200 with a status message rather than an error.
func (h *CredentialHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid credential ID")
		return
	}

	var req UpdateCredentialRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	credential, err := h.credentials.UpdateEmail(r.Context(), id, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUpdate) {
			shared.RespondWithJSON(w, r, http.StatusOK,
				shared.MessageResponse{Message: "No data to update"})
			return
		}
		HandleAPIError(w, r, err, "Failed to update credential")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, credential)
}

// ToggleActive handles DELETE /credentials/{id}: a soft deactivation (or
// reactivation) rather than a destructive delete.
func (h *CredentialHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid credential ID")
		return
	}

	isActive, err := h.credentials.ToggleActive(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to toggle credential")
		return
	}

	state := "deactivated"
	if isActive {
		state = "activated"
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: fmt.Sprintf("Credential with id %d has been %s", id, state),
	})
}
