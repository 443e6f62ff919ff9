package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/schedulizer/schedulizer-api/internal/api/shared"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
)

// Identity verifies bearer access tokens and attaches the live user record
// to the request context.
type Identity struct {
	auth *auth.Service
}

// NewIdentity creates the identity middleware over the given auth service.
func NewIdentity(authService *auth.Service) *Identity {
	return &Identity{auth: authService}
}

// Authenticate validates the bearer token from the Authorization header and
// stores the verified user in the request context for protected routes.
func (m *Identity) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		user, err := m.auth.VerifyAccessToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired token")
			default:
				slog.ErrorContext(r.Context(), "failed to verify access token",
					slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

// GetUser extracts the verified user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}
