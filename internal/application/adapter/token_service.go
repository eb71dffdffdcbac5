package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService verifies access tokens issued by the identity provider.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
