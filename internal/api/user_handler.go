package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/service"
)

// UserHandler serves the users resource: generic CRUD plus exploration.
// Self-service registration lives on the auth surface; this resource is
// for administrative user management.
type UserHandler struct {
	*ResourceHandler[domain.User, domain.UserPatch]

	users *service.UserService
}

// NewUserHandler creates a UserHandler over the given service.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler[domain.User, domain.UserPatch](
			users, decodeCreateUser, decodeUpdateUser),
		users: users,
	}
}

// Explore handles POST /users/explore.
func (h *UserHandler) Explore(w http.ResponseWriter, r *http.Request) {
	handleExplore(w, r, h.validate, h.users)
}

func decodeCreateUser(r *http.Request, v *validator.Validate) (*domain.User, error) {
	var req CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	if err := v.Struct(req); err != nil {
		return nil, err
	}
	return domain.NewUser(req.Username, req.Email, req.FullName, req.Password)
}

func decodeUpdateUser(r *http.Request, v *validator.Validate) (uuid.UUID, domain.UserPatch, error) {
	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		return uuid.Nil, domain.UserPatch{}, err
	}
	if err := v.Struct(req); err != nil {
		return uuid.Nil, domain.UserPatch{}, err
	}
	return req.ID, domain.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}, nil
}
