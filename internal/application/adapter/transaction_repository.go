// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Both dates are inclusive.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create inserts a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction owned by the user.
	// Returns domainerror.ErrTransactionNotFound when absent.
	FindByIDAndUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves the user's transactions ordered by date ascending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update replaces every mutable field of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteWithReceipts removes the user's transactions with the given IDs
	// and their receipt rows atomically. Returns the count of deleted
	// transactions and the receipt rows that went with them.
	DeleteWithReceipts(ctx context.Context, ids []int64, userID uuid.UUID) (int64, []*entity.ReceiptImage, error)
}
