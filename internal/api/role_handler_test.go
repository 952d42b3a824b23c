package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviscore/serviscore-api/internal/api"
	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/mocks"
)

func roleRouter(roles *mocks.MockRoleStore) http.Handler {
	handler := api.NewRoleHandler(roles)

	r := chi.NewRouter()
	r.Get("/roles", handler.List)
	r.Get("/roles/{id}", handler.GetByID)
	r.Post("/roles", handler.Create)
	return r
}

func TestRoleHandler_ListIncludesSeededRoles(t *testing.T) {
	t.Parallel()

	router := roleRouter(mocks.NewMockRoleStore())

	rec := doRequest(router, http.MethodGet, "/roles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var roles []domain.Role
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	assert.Len(t, roles, 2)
}

func TestRoleHandler_GetByID(t *testing.T) {
	t.Parallel()

	router := roleRouter(mocks.NewMockRoleStore())

	rec := doRequest(router, http.MethodGet, "/roles/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var role domain.Role
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &role))
	assert.Equal(t, "admin", role.Name)

	rec = doRequest(router, http.MethodGet, "/roles/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleHandler_Create(t *testing.T) {
	t.Parallel()

	roles := mocks.NewMockRoleStore()
	router := roleRouter(roles)

	rec := doRequest(router, http.MethodPost, "/roles", `{"name": "moderator"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var role domain.Role
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &role))
	assert.NotZero(t, role.ID)
	assert.Equal(t, "moderator", role.Name)

	// Duplicate name conflicts.
	rec = doRequest(router, http.MethodPost, "/roles", `{"name": "moderator"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Blank name fails validation.
	rec = doRequest(router, http.MethodPost, "/roles", `{"name": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
