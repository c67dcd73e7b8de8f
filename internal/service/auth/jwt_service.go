// Package auth provides token issuance/verification and password
// comparison for the API's authentication layer.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing signed identity tokens.
// Expiry is the only invalidation mechanism; there is no revocation list.
type JWTService interface {
	// GenerateToken creates a signed token binding the user's ID and an
	// absolute expiry. Returns the token string or an error if signing
	// fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken checks the token's signature and expiry and extracts
	// its claims. Fails with ErrExpiredToken, ErrInvalidToken, or
	// ErrTokenNotYetValid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an identity token.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
