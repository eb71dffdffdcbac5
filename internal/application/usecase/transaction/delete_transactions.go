package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// DeleteTransactionsInput represents the input for transaction deletion.
type DeleteTransactionsInput struct {
	TransactionIDs []int64
	UserID         uuid.UUID
}

// DeleteTransactionsOutput represents the output of transaction deletion.
type DeleteTransactionsOutput struct {
	DeletedCount int64
}

// DeleteTransactionsUseCase removes transactions together with their receipts.
type DeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	storage         adapter.ObjectStorage
}

// NewDeleteTransactionsUseCase creates a new DeleteTransactionsUseCase instance.
func NewDeleteTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	storage adapter.ObjectStorage,
) *DeleteTransactionsUseCase {
	return &DeleteTransactionsUseCase{
		transactionRepo: transactionRepo,
		storage:         storage,
	}
}

// Execute deletes the user's transactions with the given IDs. IDs that do
// not exist or belong to someone else are ignored. Rows are removed
// atomically; stored objects are removed afterwards on a best-effort basis.
func (uc *DeleteTransactionsUseCase) Execute(ctx context.Context, input DeleteTransactionsInput) (*DeleteTransactionsOutput, error) {
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"transaction IDs list cannot be empty",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	deletedCount, receipts, err := uc.transactionRepo.DeleteWithReceipts(ctx, input.TransactionIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete transactions: %w", err)
	}

	if len(receipts) > 0 && uc.storage != nil {
		paths := make([]string, 0, len(receipts))
		for _, r := range receipts {
			paths = append(paths, r.Path)
		}
		if err := uc.storage.Remove(ctx, paths); err != nil {
			slog.Warn("Failed to remove receipt objects",
				"user_id", input.UserID,
				"count", len(paths),
				"error", err,
			)
		}
	}

	return &DeleteTransactionsOutput{
		DeletedCount: deletedCount,
	}, nil
}
