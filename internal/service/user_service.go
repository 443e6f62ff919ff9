package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/platform/logger"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// PasswordHasher is the opaque password capability the user service relies
// on: hash a plaintext, and compare a plaintext against a stored hash.
// Implemented with bcrypt in the auth package; defined here on the consumer
// side so the service layer carries no crypto dependency.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare compares a stored hash with a plaintext candidate.
	// Returns nil on match, an error on mismatch.
	Compare(hashedPassword, password string) error
}

// UserService is the business-logic layer for users. It specializes the
// generic resource service with credential handling: passwords are hashed
// before they reach the store, and Authenticate performs the credential
// check the auth lifecycle is built on.
type UserService struct {
	*Resource[domain.User, domain.UserPatch]

	repo   store.UserRepository
	hasher PasswordHasher
}

// NewUserService creates a UserService over the given repository and
// password hasher.
func NewUserService(repo store.UserRepository, hasher PasswordHasher) *UserService {
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	return &UserService{
		Resource: NewResource[domain.User, domain.UserPatch](repo),
		repo:     repo,
		hasher:   hasher,
	}
}

// Create hashes the user's plaintext password and persists the user.
// The plaintext is cleared before the entity crosses into the store.
// Returns a duplicate error if the username or email is already taken.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if user.Password == "" {
		return nil, domain.ErrEmptyPassword
	}
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID fetches a user by ID. It aliases the embedded generic Get so
// the service satisfies the auth package's UserDirectory interface.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.Resource.Get(ctx, id)
}

// Update merges the patch into the stored user. A password change arrives
// as plaintext in the patch wrapper and is hashed here.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	return s.repo.Update(ctx, id, patch)
}

// UpdatePassword hashes the new plaintext password and stores it for the
// given user.
func (s *UserService) UpdatePassword(ctx context.Context, id uuid.UUID, password string) (*domain.User, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, domain.UserPatch{HashedPassword: &hashed})
}

// Authenticate checks a username/password pair against the store.
// Unmatched credentials, whether the username is unknown or the password
// wrong, yield store.ErrUserNotFound so callers cannot probe which part
// failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch during authentication",
			slog.String("username", username))
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// Explore runs a filtered, sorted, paginated listing over users.
func (s *UserService) Explore(
	ctx context.Context,
	req store.ExplorationRequest,
) (*store.ExplorationResult[domain.User], error) {
	return s.repo.Explore(ctx, req)
}
