package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the access token is invalid for any reason:
	// bad signature, malformed, expired, or the wrong token type. The
	// distinct failure modes are deliberately collapsed so responses leak
	// nothing about why verification failed.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the access token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidRefreshToken indicates the refresh token is invalid for any
	// reason. Same collapsing discipline as ErrInvalidToken.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken indicates the refresh token has expired.
	ErrExpiredRefreshToken = errors.New("refresh token has expired")

	// ErrWrongTokenType indicates a token was presented in the wrong role,
	// e.g. an access token sent to the refresh endpoint.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrNoUser indicates an operation requiring an authenticated user ran
	// without one attached. This is an integration bug in the caller, not a
	// user-facing failure.
	ErrNoUser = errors.New("no authenticated user attached to request")
)
