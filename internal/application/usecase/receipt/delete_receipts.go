package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// DeleteReceiptsInput represents the input for removing receipts.
type DeleteReceiptsInput struct {
	UserID         uuid.UUID
	TransactionIDs []int64
}

// DeleteReceiptsOutput represents the output of a receipt deletion.
type DeleteReceiptsOutput struct {
	DeletedCount int
}

// DeleteReceiptsUseCase removes every receipt of the given transactions.
type DeleteReceiptsUseCase struct {
	receiptRepo adapter.ReceiptRepository
	storage     adapter.ObjectStorage
}

// NewDeleteReceiptsUseCase creates a new DeleteReceiptsUseCase instance.
func NewDeleteReceiptsUseCase(receiptRepo adapter.ReceiptRepository, storage adapter.ObjectStorage) *DeleteReceiptsUseCase {
	return &DeleteReceiptsUseCase{
		receiptRepo: receiptRepo,
		storage:     storage,
	}
}

// Execute removes the rows first and the objects second.
func (uc *DeleteReceiptsUseCase) Execute(ctx context.Context, input DeleteReceiptsInput) (*DeleteReceiptsOutput, error) {
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"transaction IDs list cannot be empty",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	removed, err := uc.receiptRepo.DeleteByTransactionIDs(ctx, input.UserID, input.TransactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to delete receipts: %w", err)
	}

	if len(removed) > 0 {
		paths := make([]string, 0, len(removed))
		for _, r := range removed {
			paths = append(paths, r.Path)
		}
		if err := uc.storage.Remove(ctx, paths); err != nil {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeReceiptStorage,
				"failed to remove images",
				errors.Join(domainerror.ErrReceiptStorage, err),
			)
		}
	}

	return &DeleteReceiptsOutput{DeletedCount: len(removed)}, nil
}
