package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidSubject is returned when the token subject is not a user id.
	ErrInvalidSubject = errors.New("token subject is not a valid user id")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Request throttling (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
