package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// MockRepository implements store.Repository and store.Explorer for any
// entity type.
type MockRepository[T store.Entity, P any] struct {
	// Function fields for customizable behavior
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*T, error)
	GetAllFn  func(ctx context.Context) ([]T, error)
	CreateFn  func(ctx context.Context, entity *T) error
	UpdateFn  func(ctx context.Context, id uuid.UUID, patch P) (*T, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ExploreFn func(ctx context.Context, req store.ExplorationRequest) (*store.ExplorationResult[T], error)

	// Data for default implementation
	Entities map[uuid.UUID]*T

	// NotFound is the error returned when an entity is absent. Defaults to
	// store.ErrNotFound.
	NotFound error
}

// NewMockRepository creates a mock repository with an empty in-memory map.
func NewMockRepository[T store.Entity, P any]() *MockRepository[T, P] {
	return &MockRepository[T, P]{
		Entities: make(map[uuid.UUID]*T),
		NotFound: store.ErrNotFound,
	}
}

// GetByID implements the Repository interface.
func (m *MockRepository[T, P]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	entity, ok := m.Entities[id]
	if !ok {
		return nil, m.NotFound
	}
	return entity, nil
}

// GetAll implements the Repository interface. Entities are returned in a
// stable order so assertions do not flake.
func (m *MockRepository[T, P]) GetAll(ctx context.Context) ([]T, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	ids := make([]uuid.UUID, 0, len(m.Entities))
	for id := range m.Entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	entities := make([]T, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, *m.Entities[id])
	}
	return entities, nil
}

// Create implements the Repository interface.
func (m *MockRepository[T, P]) Create(ctx context.Context, entity *T) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entity)
	}

	m.Entities[(*entity).EntityID()] = entity
	return nil
}

// Update implements the Repository interface. The default implementation
// cannot apply a typed patch, so it returns the stored entity unchanged;
// tests that care about merge behavior set UpdateFn.
func (m *MockRepository[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*T, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	entity, ok := m.Entities[id]
	if !ok {
		return nil, m.NotFound
	}
	return entity, nil
}

// Delete implements the Repository interface.
func (m *MockRepository[T, P]) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Entities[id]; !ok {
		return uuid.Nil, m.NotFound
	}
	delete(m.Entities, id)
	return id, nil
}

// Explore implements the Explorer interface.
func (m *MockRepository[T, P]) Explore(
	ctx context.Context,
	req store.ExplorationRequest,
) (*store.ExplorationResult[T], error) {
	if m.ExploreFn != nil {
		return m.ExploreFn(ctx, req)
	}

	if err := req.Pagination.Validate(); err != nil {
		return nil, err
	}

	entities, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewExplorationResult(req, len(entities), entities), nil
}
