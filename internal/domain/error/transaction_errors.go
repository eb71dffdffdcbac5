// Package error defines domain-specific errors for the Spend Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found for the user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not Income or Expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionStatus is returned when the status is not Pending, Complete or Canceled.
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when an amount is negative or not a number.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrCategoryNotFoundForTransaction is returned when the category does not exist for the transaction type.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrMissingDescription is returned when the description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrMerchantTooLong is returned when the merchant exceeds the maximum length.
	ErrMerchantTooLong = errors.New("merchant too long")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrEmptyTransactionIDs is returned when an empty list of transaction IDs is provided.
	ErrEmptyTransactionIDs = errors.New("transaction IDs list cannot be empty")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionStatus TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeMissingDescription       TransactionErrorCode = "TXN-010007"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeNotesTooLong             TransactionErrorCode = "TXN-010009"
	ErrCodeMerchantTooLong          TransactionErrorCode = "TXN-010010"
	ErrCodeEmptyTransactionIDs      TransactionErrorCode = "TXN-010011"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
