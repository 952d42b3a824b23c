package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/store"
)

// RoleHandler handles the admin role management endpoints.
type RoleHandler struct {
	roles     store.RoleStore
	validator *validator.Validate
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roles store.RoleStore) *RoleHandler {
	return &RoleHandler{
		roles:     roles,
		validator: validator.New(),
	}
}

// List handles GET /roles.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list roles")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, roles)
}

// GetByID handles GET /roles/{id}.
func (h *RoleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid role ID")
		return
	}

	role, err := h.roles.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get role")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, role)
}

// Create handles POST /roles.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	role, err := domain.NewRole(req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Invalid role data")
		return
	}

	if err := h.roles.Create(r.Context(), role); err != nil {
		HandleAPIError(w, r, err, "Failed to create role")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, role)
}
