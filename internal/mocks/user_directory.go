package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// MockUserDirectory implements auth.UserDirectory for testing the auth
// lifecycle without a real user service.
type MockUserDirectory struct {
	// Function fields for customizable behavior
	AuthenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFn       func(ctx context.Context, user *domain.User) (*domain.User, error)

	// Data for default implementation, keyed by username. Passwords are
	// compared in plaintext against User.Password.
	Users map[string]*domain.User
}

// NewMockUserDirectory creates a mock directory with an empty user map.
func NewMockUserDirectory() *MockUserDirectory {
	return &MockUserDirectory{Users: make(map[string]*domain.User)}
}

// Authenticate implements the UserDirectory interface.
func (m *MockUserDirectory) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, username, password)
	}

	user, ok := m.Users[username]
	if !ok || user.Password != password {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByID implements the UserDirectory interface.
func (m *MockUserDirectory) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements the UserDirectory interface.
func (m *MockUserDirectory) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return nil, store.ErrUsernameExists
	}
	m.Users[user.Username] = user
	return user, nil
}

var _ auth.UserDirectory = (*MockUserDirectory)(nil)
