package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/auth"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
	"github.com/techdigi/hr-backoffice/internal/pkg/jwt"
)

type userKey struct{}

// WithUser stores the authenticated user on ctx.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user stored by AuthRequired.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userKey{}).(user.User)
	return u, ok
}

// TokenFromCookie reads the session token cookie written at login.
func TokenFromCookie(name string) func(r *http.Request) string {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// Verifier looks for a bearer header first, then the session cookie.
func Verifier(jwtService jwt.Service) func(http.Handler) http.Handler {
	return jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader, TokenFromCookie(jwtService.CookieName()))
}

// AuthRequired rejects requests without a valid token and reloads the user so
// deleted accounts lose access immediately.
func AuthRequired(users user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				switch {
				case errors.Is(err, jwtauth.ErrExpired):
					response.HandleError(w, auth.ErrTokenExpired)
				case errors.Is(err, jwtauth.ErrNoTokenFound):
					response.HandleError(w, auth.ErrTokenMissing)
				default:
					response.HandleError(w, auth.ErrInvalidToken)
				}
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrTokenMissing)
				return
			}

			claims, err := jwt.ClaimsFromToken(token)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if !errors.Is(err, user.ErrUserNotFound) {
					slog.Error("Failed to load token user", "user_id", claims.UserID, "error", err)
				}
				response.Unauthorized(w, "Not authorized, user not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		}
		return http.HandlerFunc(hfn)
	}
}
