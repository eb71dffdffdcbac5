package error

import "errors"

// Receipt domain errors.
var (
	// ErrNoReceiptFiles is returned when an upload carries no files.
	ErrNoReceiptFiles = errors.New("at least one image is required")

	// ErrReceiptTooLarge is returned when a file exceeds the configured size.
	ErrReceiptTooLarge = errors.New("image exceeds the maximum size")

	// ErrUnsupportedReceiptType is returned when a file is not a jpeg, png or webp image.
	ErrUnsupportedReceiptType = errors.New("unsupported image type")

	// ErrReceiptStorage is returned when the object store rejects an operation.
	ErrReceiptStorage = errors.New("receipt storage failure")
)

// ReceiptErrorCode defines error codes for receipt errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoReceiptFiles         ReceiptErrorCode = "RCP-010001"
	ErrCodeReceiptTooLarge        ReceiptErrorCode = "RCP-010002"
	ErrCodeUnsupportedReceiptType ReceiptErrorCode = "RCP-010003"
	ErrCodeReceiptTransaction     ReceiptErrorCode = "RCP-010004"

	// Storage errors (99XXXX)
	ErrCodeReceiptStorage ReceiptErrorCode = "RCP-990001"
)

// ReceiptError represents a receipt error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
