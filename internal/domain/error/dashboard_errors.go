package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidTimeRange is returned when the time range selector is unknown.
	ErrInvalidTimeRange = errors.New("range must be one of: all, custom, year, 3m, 1m, 7d")

	// ErrMissingCustomRange is returned when a custom range lacks an endpoint.
	ErrMissingCustomRange = errors.New("custom range requires start_date and end_date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingCategory is returned when a category series is requested without a category.
	ErrMissingCategory = errors.New("category is required")

	// ErrInvalidBreakdownType is returned when the breakdown type is not Income or Expense.
	ErrInvalidBreakdownType = errors.New("type must be Income or Expense")

	// ErrNothingToChart is returned when a chart export has no data points.
	ErrNothingToChart = errors.New("no data to chart")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTimeRange     DashboardErrorCode = "DSH-010001"
	ErrCodeMissingCustomRange   DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateFormat    DashboardErrorCode = "DSH-010003"
	ErrCodeMissingCategory      DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidBreakdownType DashboardErrorCode = "DSH-010005"
	ErrCodeNothingToChart       DashboardErrorCode = "DSH-010006"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
