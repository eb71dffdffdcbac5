package error

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryNotExpense  = errors.New("category is not an expense category")
	ErrInvalidCategoryType = errors.New("category type must be 'Income' or 'Expense'")
)

// CategoryErrorCode identifies a category failure. Format: CAT-XXYYYY.
type CategoryErrorCode string

const (
	ErrCodeInvalidCategoryType CategoryErrorCode = "CAT-010001"
)

// CategoryError is a coded category error.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *CategoryError) Unwrap() error { return e.Err }

// NewCategoryError creates a new CategoryError.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{Code: code, Message: message, Err: err}
}
