package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/serviscore/serviscore-api/internal/api/middleware"
	"github.com/serviscore/serviscore-api/internal/api/shared"
	"github.com/serviscore/serviscore-api/internal/domain"
)

// RouterDeps bundles the dependencies the router needs.
type RouterDeps struct {
	AuthHandler       *AuthHandler
	CredentialHandler *CredentialHandler
	ProfileHandler    *ProfileHandler
	RoleHandler       *RoleHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// NewRouter builds the HTTP router. Public routes carry no auth; everything
// else goes through bearer validation plus a per-route role check.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	// Public routes.
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, shared.MessageResponse{Message: "ok"})
	})
	r.Post("/auth/register", deps.AuthHandler.Register)
	r.Post("/auth/login", deps.AuthHandler.Login)

	// Admin-only credential management.
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.Authenticate)
		r.Use(middleware.RequireRoles(domain.RoleAdmin))

		r.Get("/credentials", deps.CredentialHandler.ListActive)
		r.Get("/credentials/all", deps.CredentialHandler.ListAll)
		r.Get("/credentials/{id}", deps.CredentialHandler.GetByID)
		r.Get("/credentials/email/{email}", deps.CredentialHandler.GetByEmail)
		r.Patch("/credentials/{id}", deps.CredentialHandler.UpdateEmail)
		r.Delete("/credentials/{id}", deps.CredentialHandler.ToggleActive)

		r.Get("/roles", deps.RoleHandler.List)
		r.Get("/roles/{id}", deps.RoleHandler.GetByID)
		r.Post("/roles", deps.RoleHandler.Create)

		r.Get("/profiles", deps.ProfileHandler.List)
	})

	// Individual profile routes open to both roles.
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.Authenticate)
		r.Use(middleware.RequireRoles(domain.RoleAdmin, domain.RoleUser))

		r.Get("/profiles/{id}", deps.ProfileHandler.GetByID)
		r.Patch("/profiles/{id}", deps.ProfileHandler.Update)
		r.Delete("/profiles/{id}", deps.ProfileHandler.ToggleActive)
	})

	return r
}
