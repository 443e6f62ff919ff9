package api

import (
	"errors"
	"net/http"

	"github.com/schedulizer/schedulizer-api/internal/api/shared"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This is the single translation point from
// the error taxonomy to transport-facing status, and prevents leaking
// internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors (including unmatched credentials)
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidPage),
		errors.Is(err, store.ErrInvalidLimit),
		errors.Is(err, store.ErrInvalidSortOrder),
		errors.Is(err, store.ErrInvalidSortField),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error (includes auth.ErrNoUser, which is an
	// integration bug rather than a client mistake)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Refresh token is expired"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrScheduleNotFound):
		return "Schedule not found"

	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case store.IsDuplicateError(err):
		return "Already exists"

	case errors.Is(err, domain.ErrPasswordMismatch):
		return "Confirm password does not match"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrInvalidPage),
		errors.Is(err, store.ErrInvalidLimit),
		errors.Is(err, store.ErrInvalidSortOrder),
		errors.Is(err, store.ErrInvalidSortField):
		return "Invalid exploration request"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError translates an internal error into a sanitized HTTP error
// response. An empty userMessage falls back to the safe message for the
// error class.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
