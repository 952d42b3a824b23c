package middleware

import (
	"net/http"

	"github.com/serviscore/serviscore-api/internal/api/shared"
)

// RequireRoles is the authorization gate. Each route declares its
// permitted role IDs statically; the authenticated credential's role must
// be in that set or the request is rejected with 403 before any handler
// runs. It must be mounted after Authenticate.
func RequireRoles(permitted ...int64) func(http.Handler) http.Handler {
	permittedSet := make(map[int64]struct{}, len(permitted))
	for _, roleID := range permitted {
		permittedSet[roleID] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := GetCredential(r)
			if !ok {
				// Misconfigured chain: the role gate ran without the
				// access guard in front of it.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			if _, allowed := permittedSet[credential.RoleID]; !allowed {
				shared.RespondWithError(w, r, http.StatusForbidden, "Insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
