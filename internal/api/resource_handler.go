package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/api/shared"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// resourceService is the slice of the service layer the generic handler
// drives.
type resourceService[T store.Entity, P any] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, patch P) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// ResourceHandler serves the generic CRUD surface for one resource type.
// Resource-specific handlers embed it and add their extra operations
// (e.g. exploration). The decode functions adapt the resource's request
// payloads; everything downstream of them is shared.
type ResourceHandler[T store.Entity, P any] struct {
	svc          resourceService[T, P]
	validate     *validator.Validate
	decodeCreate func(r *http.Request, v *validator.Validate) (*T, error)
	decodeUpdate func(r *http.Request, v *validator.Validate) (uuid.UUID, P, error)
}

// NewResourceHandler creates a generic CRUD handler for one resource type.
func NewResourceHandler[T store.Entity, P any](
	svc resourceService[T, P],
	decodeCreate func(r *http.Request, v *validator.Validate) (*T, error),
	decodeUpdate func(r *http.Request, v *validator.Validate) (uuid.UUID, P, error),
) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{
		svc:          svc,
		validate:     validator.New(),
		decodeCreate: decodeCreate,
		decodeUpdate: decodeUpdate,
	}
}

// Get handles GET /{resource}/{id}.
func (h *ResourceHandler[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entity, err := h.svc.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, entity)
}

// GetAll handles GET /{resource}.
func (h *ResourceHandler[T, P]) GetAll(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, entities)
}

// Create handles POST /{resource}.
func (h *ResourceHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	entity, err := h.decodeCreate(r, h.validate)
	if err != nil {
		respondDecodeError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), entity)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, created)
}

// Update handles PATCH /{resource}. Only the fields present in the payload
// are changed.
func (h *ResourceHandler[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, patch, err := h.decodeUpdate(r, h.validate)
	if err != nil {
		respondDecodeError(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /{resource}/{id}. Responds with the deleted ID as
// confirmation.
func (h *ResourceHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, deleted)
}

// handleExplore serves the exploration endpoint for any resource type.
func handleExplore[T store.Entity](
	w http.ResponseWriter,
	r *http.Request,
	v *validator.Validate,
	explorer store.Explorer[T],
) {
	var req ExploreRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := v.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := explorer.Explore(r.Context(), req.ToStore())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// respondDecodeError classifies a decode failure: validator and domain
// validation errors carry a sanitized message, anything else is a
// malformed body.
func respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		HandleAPIError(w, r, err, "")
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
	}
}
