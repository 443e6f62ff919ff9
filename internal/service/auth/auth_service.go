// Package auth owns the authentication lifecycle: credential checks,
// access/refresh token issuance and rotation, and access-token
// verification for request-scoped identity.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/platform/logger"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// UserDirectory is the slice of the user service the auth lifecycle
// depends on.
type UserDirectory interface {
	// Authenticate checks a username/password pair, returning the user on
	// success or a not-found error when the credentials match no user.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetByID fetches the live user record for a verified token subject.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Create registers a new user, hashing their password before storage.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// UserContext is the bundle every successful auth operation returns: the
// authenticated user (credentials stripped) plus a freshly issued
// access/refresh token pair.
type UserContext struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"` // access token lifetime in seconds
}

// RegisterParams is the input to Register.
type RegisterParams struct {
	Username        string
	Email           string
	FullName        string
	Password        string
	ConfirmPassword string
}

// Service implements the token lifecycle on top of the user service and
// the JWT service.
type Service struct {
	users  UserDirectory
	tokens JWTService
	logger *slog.Logger
}

// NewService creates an auth Service. If log is nil, the default logger is
// used.
func NewService(users UserDirectory, tokens JWTService, log *slog.Logger) *Service {
	if users == nil {
		panic("users cannot be nil")
	}
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		users:  users,
		tokens: tokens,
		logger: log.With(slog.String("component", "auth_service")),
	}
}

// Login checks the credentials and issues a fresh UserContext.
// Unmatched credentials surface as the user service's not-found error, not
// as a generic failure.
func (s *Service) Login(ctx context.Context, username, password string) (*UserContext, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login failed: credentials unmatched",
				slog.String("username", username))
		}
		return nil, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return s.IssueUserContext(ctx, user)
}

// Register creates a new user and issues their first UserContext.
// The password confirmation must match before any store call is made; a
// duplicate account surfaces as the store's conflict error.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*UserContext, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if params.Password != params.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	user, err := domain.NewUser(params.Username, params.Email, params.FullName, params.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info("user registered", slog.String("user_id", created.ID.String()))
	return s.IssueUserContext(ctx, created)
}

// Verify re-issues a UserContext for a user already authenticated by the
// identity middleware. A nil user means the caller wired the route without
// the middleware; that is an integration bug, not a client error.
func (s *Service) Verify(ctx context.Context, user *domain.User) (*UserContext, error) {
	if user == nil {
		return nil, ErrNoUser
	}
	return s.IssueUserContext(ctx, user)
}

// Refresh verifies a refresh token and issues a new UserContext for the
// token's subject. Every verification failure collapses into
// ErrInvalidRefreshToken; the live user record is re-fetched so revoked or
// deleted accounts stop refreshing immediately.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*UserContext, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug("refresh rejected", slog.String("error", err.Error()))
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("refresh rejected: user no longer exists",
				slog.String("user_id", claims.UserID.String()))
			return nil, ErrInvalidRefreshToken
		}
		// A store fault is an internal failure, not a token problem.
		return nil, err
	}

	log.Info("token pair refreshed", slog.String("user_id", user.ID.String()))
	return s.IssueUserContext(ctx, user)
}

// VerifyAccessToken verifies an access token and returns the live user
// record it identifies, for use as request-scoped identity. No new tokens
// are issued. Every verification failure collapses into ErrInvalidToken.
func (s *Service) VerifyAccessToken(ctx context.Context, accessToken string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.tokens.ValidateToken(ctx, accessToken)
	if err != nil {
		log.Debug("access token rejected", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// IssueUserContext signs a fresh access/refresh token pair for the user.
// Either both tokens are issued or neither is; a pair is never partially
// regenerated.
func (s *Service) IssueUserContext(ctx context.Context, user *domain.User) (*UserContext, error) {
	accessToken, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &UserContext{
		User:         user.Sanitized(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokens.AccessTokenLifetime().Seconds()),
	}, nil
}
