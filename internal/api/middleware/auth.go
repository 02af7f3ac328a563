package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
	"github.com/stayhaven/hotel-booking/backend/pkg/jwt"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// UserGetter looks up a stored user by email.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// ClaimsFromContext returns the verified claims attached by the auth
// guard, if any.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*jwt.Claims)
	return claims, ok
}

// Auth is the authentication guard. It verifies the bearer token's
// signature and expiry and attaches the decoded claims to the request
// context. Missing or invalid tokens short-circuit with 401.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeGuardError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeGuardError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole is the authorization guard. It loads the stored user for
// the claim email and permits continuation only on an exact role
// match. A missing user record is forbidden, not a fault: the caller
// holds a valid token for an identity that cannot carry the role.
func RequireRole(users UserGetter, role entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeGuardError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			user, err := users.GetByEmail(r.Context(), claims.Email)
			if err != nil {
				var appErr *apperrors.AppError
				if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeNotFound {
					writeGuardError(w, http.StatusForbidden, "Forbidden Access")
					return
				}
				writeGuardError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if user.Role != role {
				writeGuardError(w, http.StatusForbidden, "Forbidden Access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeGuardError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
