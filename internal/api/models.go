package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// Common request structures. Response payloads are the domain entities and
// auth.UserContext serialized directly, wrapped in the shared.DataResponse
// envelope.

// SortRequest mirrors store.Sort with validation tags.
type SortRequest struct {
	By    string `json:"by"    validate:"required"`
	Order int    `json:"order" validate:"required,oneof=1 -1"`
}

// PaginationRequest mirrors store.PaginationRequest with validation tags.
type PaginationRequest struct {
	Page  int         `json:"page"  validate:"required,gte=1"`
	Limit int         `json:"limit" validate:"required,gte=1"`
	Sort  SortRequest `json:"sort"  validate:"required"`
}

// ExploreRequest defines the payload for the exploration endpoints.
type ExploreRequest struct {
	Query      string            `json:"query"`
	Pagination PaginationRequest `json:"pagination" validate:"required"`
}

// ToStore converts the transport request to the store protocol type.
func (e ExploreRequest) ToStore() store.ExplorationRequest {
	return store.ExplorationRequest{
		Query: e.Query,
		Pagination: store.PaginationRequest{
			Page:  e.Pagination.Page,
			Limit: e.Pagination.Limit,
			Sort:  store.Sort{By: e.Pagination.Sort.By, Order: e.Pagination.Sort.Order},
		},
	}
}

// CreateScheduleRequest defines the payload for creating a schedule.
type CreateScheduleRequest struct {
	Name  string     `json:"name"  validate:"required"`
	Start time.Time  `json:"start" validate:"required"`
	End   *time.Time `json:"end"`
	Desc  string     `json:"desc"`
}

// UpdateScheduleRequest defines the payload for partially updating a
// schedule. Absent fields are left untouched.
type UpdateScheduleRequest struct {
	ID    uuid.UUID  `json:"id" validate:"required"`
	Name  *string    `json:"name"`
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
	Desc  *string    `json:"desc"`
}

// CreateUserRequest defines the payload for creating a user directly
// through the users resource (registration goes through /auth/register).
type CreateUserRequest struct {
	Username string `json:"username"  validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password"  validate:"required,min=12,max=72"`
}

// UpdateUserRequest defines the payload for partially updating a user.
type UpdateUserRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Username *string   `json:"username"`
	Email    *string   `json:"email"     validate:"omitempty,email"`
	FullName *string   `json:"full_name"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Username        string `json:"username"        validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"        validate:"required,min=12,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
