package middleware

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

// RequireRole lets through users holding any of roles. It must run after AuthRequired.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Not authorized, no token")
				return
			}

			for _, role := range roles {
				if u.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "User role '"+string(u.Role)+"' is not authorized to access this route")
		})
	}
}
