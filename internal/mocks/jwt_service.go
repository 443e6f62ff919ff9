package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Function fields for customizable behavior
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Lifetime is returned by AccessTokenLifetime. Defaults to one hour.
	Lifetime time.Duration
}

// NewMockJWTService creates a mock JWT service whose defaults issue static
// token strings and accept any token as the zero user.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{Lifetime: time.Hour}
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return "access-token-" + userID.String(), nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return &auth.Claims{TokenType: "access"}, nil
}

// GenerateRefreshToken implements the JWTService interface.
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return "refresh-token-" + userID.String(), nil
}

// ValidateRefreshToken implements the JWTService interface.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return &auth.Claims{TokenType: "refresh"}, nil
}

// AccessTokenLifetime implements the JWTService interface.
func (m *MockJWTService) AccessTokenLifetime() time.Duration {
	if m.Lifetime == 0 {
		return time.Hour
	}
	return m.Lifetime
}

var _ auth.JWTService = (*MockJWTService)(nil)
