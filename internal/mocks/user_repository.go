package mocks

import (
	"context"

	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// MockUserRepository implements store.UserRepository.
type MockUserRepository struct {
	*MockRepository[domain.User, domain.UserPatch]

	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

// NewMockUserRepository creates a mock user repository with an empty
// in-memory map.
func NewMockUserRepository() *MockUserRepository {
	repo := NewMockRepository[domain.User, domain.UserPatch]()
	repo.NotFound = store.ErrUserNotFound
	return &MockUserRepository{MockRepository: repo}
}

// GetByUsername implements the UserRepository interface.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, user := range m.Entities {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Statically verify the mock satisfies the interface.
var _ store.UserRepository = (*MockUserRepository)(nil)
