package middleware

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
)

// AdminOnly restricts a route group to back-office operators.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}
