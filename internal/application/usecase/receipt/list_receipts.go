package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
)

// DefaultURLExpiry is how long a listed receipt URL stays valid.
const DefaultURLExpiry = 15 * time.Minute

// ListReceiptsInput represents the input for listing receipts.
type ListReceiptsInput struct {
	UserID        uuid.UUID
	TransactionID *int64
}

// ListReceiptsOutput represents the listed receipts.
type ListReceiptsOutput struct {
	Receipts []*ReceiptOutput
}

// ListReceiptsUseCase lists receipts with download URLs.
type ListReceiptsUseCase struct {
	receiptRepo adapter.ReceiptRepository
	storage     adapter.ObjectStorage
	urlExpiry   time.Duration
}

// NewListReceiptsUseCase creates a new ListReceiptsUseCase instance.
func NewListReceiptsUseCase(receiptRepo adapter.ReceiptRepository, storage adapter.ObjectStorage, urlExpiry time.Duration) *ListReceiptsUseCase {
	if urlExpiry <= 0 {
		urlExpiry = DefaultURLExpiry
	}
	return &ListReceiptsUseCase{
		receiptRepo: receiptRepo,
		storage:     storage,
		urlExpiry:   urlExpiry,
	}
}

// Execute lists the user's receipts.
func (uc *ListReceiptsUseCase) Execute(ctx context.Context, input ListReceiptsInput) (*ListReceiptsOutput, error) {
	receipts, err := uc.receiptRepo.FindByUser(ctx, input.UserID, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	output := &ListReceiptsOutput{Receipts: make([]*ReceiptOutput, 0, len(receipts))}
	for _, r := range receipts {
		url, err := uc.storage.URL(ctx, r.Path, uc.urlExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to sign receipt url: %w", err)
		}
		output.Receipts = append(output.Receipts, toReceiptOutput(r, url))
	}
	return output, nil
}
