package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService with function fields for
// per-test overrides. The defaults issue an opaque placeholder token and
// accept any non-empty token as belonging to ValidUserID.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// ValidUserID is the user ID the default ValidateToken resolves to.
	ValidUserID uuid.UUID
}

// Ensure MockJWTService implements auth.JWTService.
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return "mock-token-" + userID.String(), nil
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}
	now := time.Now().UTC()
	return &auth.Claims{
		UserID:    m.ValidUserID,
		Subject:   m.ValidUserID.String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}, nil
}
