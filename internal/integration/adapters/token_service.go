// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// AccessClaims are the claims the identity provider puts in access tokens.
// The subject is the user's UUID.
type AccessClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenService creates a token verifier for HS256 tokens signed with
// secret. When audience is not empty the aud claim must contain it.
func NewTokenService(secret, audience string) adapter.TokenService {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &tokenService{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims := &AccessClaims{}
	_, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerror.ErrInvalidSubject
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
