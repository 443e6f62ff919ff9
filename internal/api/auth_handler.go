package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/schedulizer/schedulizer-api/internal/api/shared"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
)

// AuthHandler serves the authentication lifecycle: login, registration,
// token refresh, and access-token verification.
type AuthHandler struct {
	auth     *auth.Service
	validate *validator.Validate
}

// NewAuthHandler creates an AuthHandler over the given auth service.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		auth:     authService,
		validate: validator.New(),
	}
}

// Login handles POST /auth/login. Unmatched credentials surface as a
// not-found, never distinguishing unknown users from wrong passwords.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	userContext, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userContext)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	userContext, err := h.auth.Register(r.Context(), auth.RegisterParams{
		Username:        req.Username,
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, userContext)
}

// Refresh handles POST /auth/refresh, rotating the token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	userContext, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userContext)
}

// Verify handles GET /auth/verify. The identity middleware has already
// verified the bearer token; this re-issues a fresh UserContext for the
// authenticated user.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, _ := shared.UserFromContext(r.Context())

	userContext, err := h.auth.Verify(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userContext)
}
