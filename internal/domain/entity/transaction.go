// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of money for a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "Pending"
	TransactionStatusComplete TransactionStatus = "Complete"
	TransactionStatusCanceled TransactionStatus = "Canceled"
)

// IsValid reports whether the status is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusComplete, TransactionStatusCanceled:
		return true
	}
	return false
}

// Transaction represents a single financial event recorded by a user.
// Date is a calendar day stored at UTC midnight. Amount is never negative;
// its sign comes from Type.
type Transaction struct {
	ID          int64
	UserID      uuid.UUID
	Date        time.Time
	Type        TransactionType
	Status      TransactionStatus
	Amount      decimal.Decimal
	Category    string
	Subtotal    *decimal.Decimal
	Tax         *decimal.Decimal
	Tip         *decimal.Decimal
	Merchant    string
	Description string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Counts reports whether the transaction participates in any aggregate.
func (t *Transaction) Counts() bool {
	return t.Status != TransactionStatusCanceled
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the store.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	transactionType TransactionType,
	status TransactionStatus,
	amount decimal.Decimal,
	category string,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		UserID:      userID,
		Date:        date,
		Type:        transactionType,
		Status:      status,
		Amount:      amount,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionDateRange describes the span of a user's transaction history.
type TransactionDateRange struct {
	Earliest *time.Time
	Newest   *time.Time
	Total    int64
}

// PeriodSummary holds the non-canceled totals of one period.
type PeriodSummary struct {
	Income       decimal.Decimal
	Expense      decimal.Decimal
	IncomeCount  int64
	ExpenseCount int64
}
