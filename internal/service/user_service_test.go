package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/mocks"
	"github.com/schedulizer/schedulizer-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func newTestUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, username+"@example.com", "", "a-long-enough-password")
	require.NoError(t, err)
	return user
}

func TestUserServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password and clears the plaintext", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository()
		svc := NewUserService(repo, &fakeHasher{})

		user := newTestUser(t, "alice")
		created, err := svc.Create(context.Background(), user)
		require.NoError(t, err)

		assert.Empty(t, created.Password)
		assert.True(t, strings.HasPrefix(created.HashedPassword, "hashed:"))

		stored, ok := repo.Entities[created.ID]
		require.True(t, ok)
		assert.Empty(t, stored.Password)
		assert.NotEmpty(t, stored.HashedPassword)
	})

	t.Run("rejects a user without a password", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository()
		svc := NewUserService(repo, &fakeHasher{})

		user := newTestUser(t, "alice")
		user.Password = ""
		_, err := svc.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, repo.Entities)
	})

	t.Run("hash failure aborts the create", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository()
		hashErr := errors.New("bcrypt exploded")
		svc := NewUserService(repo, &fakeHasher{hashErr: hashErr})

		_, err := svc.Create(context.Background(), newTestUser(t, "alice"))
		assert.ErrorIs(t, err, hashErr)
		assert.Empty(t, repo.Entities)
	})

	t.Run("duplicate username propagates the conflict", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository()
		repo.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrUsernameExists
		}
		svc := NewUserService(repo, &fakeHasher{})

		_, err := svc.Create(context.Background(), newTestUser(t, "alice"))
		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.True(t, store.IsDuplicateError(err))
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*mocks.MockUserRepository, *UserService, *domain.User) {
		t.Helper()
		repo := mocks.NewMockUserRepository()
		svc := NewUserService(repo, &fakeHasher{})
		user, err := svc.Create(context.Background(), newTestUser(t, "alice"))
		require.NoError(t, err)
		return repo, svc, user
	}

	t.Run("returns the user for matching credentials", func(t *testing.T) {
		t.Parallel()
		_, svc, user := setup(t)

		got, err := svc.Authenticate(context.Background(), "alice", "a-long-enough-password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password collapses into not found", func(t *testing.T) {
		t.Parallel()
		_, svc, _ := setup(t)

		_, err := svc.Authenticate(context.Background(), "alice", "a-wrong-password-here")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("unknown username collapses into not found", func(t *testing.T) {
		t.Parallel()
		_, svc, _ := setup(t)

		_, err := svc.Authenticate(context.Background(), "mallory", "a-long-enough-password")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("store faults are not masked", func(t *testing.T) {
		t.Parallel()
		repo, svc, _ := setup(t)
		storeFault := errors.New("connection reset")
		repo.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, storeFault
		}

		_, err := svc.Authenticate(context.Background(), "alice", "a-long-enough-password")
		assert.ErrorIs(t, err, storeFault)
	})
}

func TestUserServiceUpdatePassword(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository()
	var gotPatch domain.UserPatch
	repo.UpdateFn = func(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
		gotPatch = patch
		user := newTestUser(t, "alice")
		user.ID = id
		return user, nil
	}
	svc := NewUserService(repo, &fakeHasher{})

	id := uuid.New()
	_, err := svc.UpdatePassword(context.Background(), id, "a-brand-new-password")
	require.NoError(t, err)

	require.NotNil(t, gotPatch.HashedPassword)
	assert.Equal(t, "hashed:a-brand-new-password", *gotPatch.HashedPassword)
	assert.Nil(t, gotPatch.Username)
	assert.Nil(t, gotPatch.Email)
}
