package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
	"github.com/schedulizer/schedulizer-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"expired refresh token", auth.ErrExpiredRefreshToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},

		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"schedule not found", store.ErrScheduleNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrScheduleNotFound), http.StatusNotFound},

		{"generic duplicate", store.ErrDuplicate, http.StatusConflict},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"email exists", store.ErrEmailExists, http.StatusConflict},

		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid page", store.ErrInvalidPage, http.StatusBadRequest},
		{"invalid limit", store.ErrInvalidLimit, http.StatusBadRequest},
		{"invalid sort order", store.ErrInvalidSortOrder, http.StatusBadRequest},
		{"invalid sort field", store.ErrInvalidSortField, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},

		{"no user attached", auth.ErrNoUser, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"refresh token", auth.ErrInvalidRefreshToken, "Refresh token is expired"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"schedule not found", store.ErrScheduleNotFound, "Schedule not found"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"password mismatch", domain.ErrPasswordMismatch, "Confirm password does not match"},
		{"validation", domain.ErrEmptyUsername, "Invalid entity data"},
		{"exploration", store.ErrInvalidSortField, "Invalid exploration request"},
		{"internal details never leak", errors.New("pq: connection refused host=10.0.0.5"),
			"An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
