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

func profileRouter(profiles *mocks.MockProfileStore) http.Handler {
	handler := api.NewProfileHandler(profiles)

	r := chi.NewRouter()
	r.Get("/profiles", handler.List)
	r.Get("/profiles/{id}", handler.GetByID)
	r.Patch("/profiles/{id}", handler.Update)
	r.Delete("/profiles/{id}", handler.ToggleActive)
	return r
}

func seedProfile(profiles *mocks.MockProfileStore) {
	profiles.Profiles[1] = &domain.Profile{
		ID: 1, FirstName: "Ada", LastName: "Lovelace", CredentialID: 1, IsActive: true,
	}
}

func TestProfileHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("partial update keeps the other name", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewMockProfileStore()
		seedProfile(profiles)
		router := profileRouter(profiles)

		rec := doRequest(router, http.MethodPatch, "/profiles/1", `{"first_name": "Augusta"}`)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var profile domain.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "Augusta", profile.FirstName)
		assert.Equal(t, "Lovelace", profile.LastName)
	})

	t.Run("blank update is a no-op", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewMockProfileStore()
		seedProfile(profiles)
		router := profileRouter(profiles)

		rec := doRequest(router, http.MethodPatch, "/profiles/1", `{}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No data to update")
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		router := profileRouter(mocks.NewMockProfileStore())

		rec := doRequest(router, http.MethodPatch, "/profiles/42", `{"first_name": "Augusta"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProfileHandler_ToggleActiveHidesProfile(t *testing.T) {
	t.Parallel()

	profiles := mocks.NewMockProfileStore()
	seedProfile(profiles)
	router := profileRouter(profiles)

	rec := doRequest(router, http.MethodDelete, "/profiles/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "has been deactivated")

	// The deactivated profile disappears from reads.
	rec = doRequest(router, http.MethodGet, "/profiles/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
