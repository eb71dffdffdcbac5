// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey holds the uuid.UUID taken from the token subject.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey holds the email claim when the identity provider sends one.
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware verifies bearer tokens issued by the identity provider.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// caller's identity on the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, authErr := bearerToken(c.GetHeader("Authorization"))
		if authErr != nil {
			abortUnauthorized(c, authErr)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			slog.Debug("Rejected access token", "path", c.FullPath(), "error", err)
			abortUnauthorized(c, tokenError(err))
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		if claims.Email != "" {
			c.Set(string(UserEmailKey), claims.Email)
		}
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, *domainerror.AuthError) {
	if header == "" {
		return "", domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "Authorization header is required", nil)
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Invalid authorization header format", nil)
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "Token is required", nil)
	}
	return token, nil
}

func tokenError(err error) *domainerror.AuthError {
	switch {
	case errors.Is(err, domainerror.ErrExpiredToken):
		return domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "Token has expired", err)
	case errors.Is(err, domainerror.ErrInvalidSubject):
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Token subject is not a user", err)
	default:
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Invalid token", err)
	}
}

func abortUnauthorized(c *gin.Context, err *domainerror.AuthError) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: err.Message,
		Code:  string(err.Code),
	})
}

// GetUserIDFromContext returns the authenticated user's ID.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
