// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          int64
	Date        time.Time
	Type        entity.TransactionType
	Status      entity.TransactionStatus
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

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing a user's transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the user's transactions ordered by date, canceled ones included.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
	}
	for _, t := range transactions {
		output.Transactions = append(output.Transactions, toTransactionOutput(t))
	}
	return output, nil
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          t.ID,
		Date:        t.Date,
		Type:        t.Type,
		Status:      t.Status,
		Amount:      t.Amount,
		Category:    t.Category,
		Subtotal:    t.Subtotal,
		Tax:         t.Tax,
		Tip:         t.Tip,
		Merchant:    t.Merchant,
		Description: t.Description,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
