package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
)

// Entity is the minimal contract a stored resource type must satisfy.
// Identifiers are generated by the domain constructors before an entity
// reaches a store.
type Entity interface {
	EntityID() uuid.UUID
}

// Repository defines the generic data-access contract every resource type
// shares. T is the entity type, P its patch type for partial updates.
// Implementations own no business logic; they execute CRUD against the
// backing store and classify storage faults into the sentinel errors of
// this package.
type Repository[T Entity, P any] interface {
	// GetByID retrieves an entity by its unique ID.
	// Returns a not-found error (matched by IsNotFoundError) if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// GetAll retrieves every entity, unfiltered and unpaginated.
	// Deliberate scale limitation: intended for small collections only;
	// use Explore for anything user-facing.
	GetAll(ctx context.Context) ([]T, error)

	// Create persists a new entity. The entity's ID must already be set.
	// Returns a duplicate error (matched by IsDuplicateError) when a
	// uniqueness constraint is violated.
	Create(ctx context.Context, entity *T) error

	// Update merges the non-nil fields of patch into the stored entity and
	// returns the updated record. Fields absent from the patch are left
	// untouched. Returns a not-found error, without mutating anything, if
	// the ID does not exist.
	Update(ctx context.Context, id uuid.UUID, patch P) (*T, error)

	// Delete removes the entity and returns its ID as confirmation.
	// Returns a not-found error if the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// Explorer executes the exploration protocol: one logically atomic
// filter + sort + count + paginate query. The total count and the returned
// page window always reflect the same snapshot of the collection.
type Explorer[T Entity] interface {
	Explore(ctx context.Context, req ExplorationRequest) (*ExplorationResult[T], error)
}

// ScheduleRepository is the full storage surface for schedules.
type ScheduleRepository interface {
	Repository[domain.Schedule, domain.SchedulePatch]
	Explorer[domain.Schedule]
}

// UserRepository is the full storage surface for users. GetByUsername
// serves credential checks during authentication.
type UserRepository interface {
	Repository[domain.User, domain.UserPatch]
	Explorer[domain.User]

	// GetByUsername retrieves a user by their unique username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
