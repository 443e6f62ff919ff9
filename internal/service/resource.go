package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// Resource is the generic business-logic layer over a repository. CRUD
// calls pass through unchanged; classified store errors propagate to the
// caller untouched so the transport layer can translate them exactly once.
// Resource-specific services embed a Resource and add their own operations.
type Resource[T store.Entity, P any] struct {
	repo store.Repository[T, P]
}

// NewResource creates a generic resource service over the given repository.
func NewResource[T store.Entity, P any](repo store.Repository[T, P]) *Resource[T, P] {
	if repo == nil {
		panic("repo cannot be nil")
	}
	return &Resource[T, P]{repo: repo}
}

// Get fetches an entity by ID. A not-found error is an expected outcome,
// not a fault; callers distinguish it with store.IsNotFoundError.
func (s *Resource[T, P]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll fetches every entity, unfiltered and unpaginated.
func (s *Resource[T, P]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.GetAll(ctx)
}

// Create persists a new entity and returns it, identifier included.
func (s *Resource[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update merges the patch into the stored entity and returns the updated
// record, or a not-found error if the ID does not exist.
func (s *Resource[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*T, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes an entity and returns its ID as confirmation, or a
// not-found error if the ID does not exist.
func (s *Resource[T, P]) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	return s.repo.Delete(ctx, id)
}
