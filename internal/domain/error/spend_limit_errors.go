package error

import "errors"

// Spend limit domain errors.
var (
	// ErrInvalidSpendLimit is returned when the limit is negative or not a number.
	ErrInvalidSpendLimit = errors.New("limit must be a non-negative amount")

	// ErrInvalidTimeFrame is returned when the time frame is unknown.
	ErrInvalidTimeFrame = errors.New("time_frame must be one of: Yearly, Monthly, Weekly, Daily")

	// ErrMissingSpendLimitCategory is returned when no category is given.
	ErrMissingSpendLimitCategory = errors.New("category is required")
)

// SpendLimitErrorCode defines error codes for spend limit errors.
// Format: LIM-XXYYYY where XX is category and YYYY is specific error.
type SpendLimitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSpendLimit         SpendLimitErrorCode = "LIM-010001"
	ErrCodeInvalidTimeFrame          SpendLimitErrorCode = "LIM-010002"
	ErrCodeMissingSpendLimitCategory SpendLimitErrorCode = "LIM-010003"
	ErrCodeSpendLimitCategoryInvalid SpendLimitErrorCode = "LIM-010004"
)

// SpendLimitError represents a spend limit error with code and message.
type SpendLimitError struct {
	Code    SpendLimitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SpendLimitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SpendLimitError) Unwrap() error {
	return e.Err
}

// NewSpendLimitError creates a new SpendLimitError with the given code and message.
func NewSpendLimitError(code SpendLimitErrorCode, message string, err error) *SpendLimitError {
	return &SpendLimitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
