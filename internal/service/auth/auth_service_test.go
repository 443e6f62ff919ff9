package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/mocks"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
	"github.com/schedulizer/schedulizer-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T, username, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, username+"@example.com", "Test User", password)
	require.NoError(t, err)
	return user
}

func newAuthService(t *testing.T, users *mocks.MockUserDirectory) *auth.Service {
	t.Helper()
	tokens := auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		time.Hour,
		time.Now,
	)
	return auth.NewService(users, tokens, nil)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues token pair for valid credentials", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "alice", "correct-horse-battery")
		users.Users[user.Username] = user

		svc := newAuthService(t, users)
		uc, err := svc.Login(context.Background(), "alice", "correct-horse-battery")
		require.NoError(t, err)

		assert.Equal(t, user.ID, uc.User.ID)
		assert.Empty(t, uc.User.Password)
		assert.Empty(t, uc.User.HashedPassword)
		assert.NotEmpty(t, uc.AccessToken)
		assert.NotEmpty(t, uc.RefreshToken)
		assert.NotEqual(t, uc.AccessToken, uc.RefreshToken)
		assert.Equal(t, int64(3600), uc.ExpiresIn)
	})

	t.Run("wrong password surfaces as not found", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "alice", "correct-horse-battery")
		users.Users[user.Username] = user

		svc := newAuthService(t, users)
		_, err := svc.Login(context.Background(), "alice", "wrong-password-entirely")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("unknown user surfaces as not found", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(t, mocks.NewMockUserDirectory())
		_, err := svc.Login(context.Background(), "nobody", "whatever-password")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user and issues token pair", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		svc := newAuthService(t, users)

		uc, err := svc.Register(context.Background(), auth.RegisterParams{
			Username:        "bob",
			Email:           "bob@example.com",
			FullName:        "Bob Example",
			Password:        "a-long-enough-password",
			ConfirmPassword: "a-long-enough-password",
		})
		require.NoError(t, err)

		assert.Equal(t, "bob", uc.User.Username)
		assert.NotEqual(t, uuid.Nil, uc.User.ID)
		assert.NotEmpty(t, uc.AccessToken)
		assert.NotEmpty(t, uc.RefreshToken)
		assert.Contains(t, users.Users, "bob")
	})

	t.Run("password confirmation mismatch blocks any store call", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		created := false
		users.CreateFn = func(ctx context.Context, user *domain.User) (*domain.User, error) {
			created = true
			return user, nil
		}

		svc := newAuthService(t, users)
		_, err := svc.Register(context.Background(), auth.RegisterParams{
			Username:        "bob",
			Email:           "bob@example.com",
			Password:        "a-long-enough-password",
			ConfirmPassword: "a-different-password-x",
		})
		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.False(t, created)
	})

	t.Run("duplicate username propagates the conflict", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		existing := testUser(t, "bob", "a-long-enough-password")
		users.Users[existing.Username] = existing

		svc := newAuthService(t, users)
		_, err := svc.Register(context.Background(), auth.RegisterParams{
			Username:        "bob",
			Email:           "bob2@example.com",
			Password:        "a-long-enough-password",
			ConfirmPassword: "a-long-enough-password",
		})
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("invalid password propagates validation error", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(t, mocks.NewMockUserDirectory())
		_, err := svc.Register(context.Background(), auth.RegisterParams{
			Username:        "bob",
			Email:           "bob@example.com",
			Password:        "short",
			ConfirmPassword: "short",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("rotates the token pair for a live user", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "carol", "correct-horse-battery")
		users.Users[user.Username] = user

		tokens := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, time.Now)
		svc := auth.NewService(users, tokens, nil)

		refresh, err := tokens.GenerateRefreshToken(context.Background(), user.ID)
		require.NoError(t, err)

		uc, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)
		assert.Equal(t, user.ID, uc.User.ID)
		assert.NotEmpty(t, uc.AccessToken)
		assert.NotEmpty(t, uc.RefreshToken)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(t, mocks.NewMockUserDirectory())
		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("rejects access tokens on the refresh path", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "carol", "correct-horse-battery")
		users.Users[user.Username] = user

		tokens := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, time.Now)
		svc := auth.NewService(users, tokens, nil)

		access, err := tokens.GenerateToken(context.Background(), user.ID)
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), access)
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("rejects expired refresh tokens", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "carol", "correct-horse-battery")
		users.Users[user.Username] = user

		issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		past := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour,
			func() time.Time { return issued })
		refresh, err := past.GenerateRefreshToken(context.Background(), user.ID)
		require.NoError(t, err)

		present := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour,
			func() time.Time { return issued.Add(3 * time.Hour) })
		svc := auth.NewService(users, present, nil)

		_, err = svc.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("rejects tokens for deleted users", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		tokens := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, time.Now)
		svc := auth.NewService(users, tokens, nil)

		refresh, err := tokens.GenerateRefreshToken(context.Background(), uuid.New())
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("store faults stay internal", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		storeFault := errors.New("connection reset")
		users.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, storeFault
		}

		tokens := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, time.Now)
		svc := auth.NewService(users, tokens, nil)

		refresh, err := tokens.GenerateRefreshToken(context.Background(), uuid.New())
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, storeFault)
		assert.NotErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})
}

func TestVerifyAccessToken(t *testing.T) {
	t.Parallel()

	t.Run("returns the live user for a valid token", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "dave", "correct-horse-battery")
		users.Users[user.Username] = user

		tokens := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, time.Now)
		svc := auth.NewService(users, tokens, nil)

		access, err := tokens.GenerateToken(context.Background(), user.ID)
		require.NoError(t, err)

		got, err := svc.VerifyAccessToken(context.Background(), access)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("collapses every failure into one error", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		tokens := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing", time.Hour, time.Now)
		svc := auth.NewService(users, tokens, nil)

		// Garbage token.
		_, err := svc.VerifyAccessToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)

		// Valid token, deleted user.
		access, err := tokens.GenerateToken(context.Background(), uuid.New())
		require.NoError(t, err)
		_, err = svc.VerifyAccessToken(context.Background(), access)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)

		// Refresh token on the access path.
		refresh, err := tokens.GenerateRefreshToken(context.Background(), uuid.New())
		require.NoError(t, err)
		_, err = svc.VerifyAccessToken(context.Background(), refresh)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("reissues a token pair for the attached user", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserDirectory()
		user := testUser(t, "erin", "correct-horse-battery")
		users.Users[user.Username] = user

		svc := newAuthService(t, users)
		uc, err := svc.Verify(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, user.ID, uc.User.ID)
		assert.NotEmpty(t, uc.AccessToken)
	})

	t.Run("nil user is an integration bug", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(t, mocks.NewMockUserDirectory())
		_, err := svc.Verify(context.Background(), nil)
		assert.ErrorIs(t, err, auth.ErrNoUser)
	})
}
