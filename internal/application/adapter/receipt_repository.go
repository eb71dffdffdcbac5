package adapter

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt image metadata.
type ReceiptRepository interface {
	// Create records a stored receipt image.
	Create(ctx context.Context, receipt *entity.ReceiptImage) error

	// CreateBatch records several receipt images; either all rows are
	// written or none are.
	CreateBatch(ctx context.Context, receipts []*entity.ReceiptImage) error

	// FindByUser retrieves the user's receipts, optionally for one transaction.
	FindByUser(ctx context.Context, userID uuid.UUID, transactionID *int64) ([]*entity.ReceiptImage, error)

	// DeleteByTransactionIDs removes the user's receipts attached to the given
	// transactions and returns the removed rows.
	DeleteByTransactionIDs(ctx context.Context, userID uuid.UUID, transactionIDs []int64) ([]*entity.ReceiptImage, error)
}

// ObjectStorage stores receipt image bytes under a path.
type ObjectStorage interface {
	// Put uploads size bytes read from r to path.
	Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error

	// Remove deletes the objects at the given paths. Missing objects are not an error.
	Remove(ctx context.Context, paths []string) error

	// URL returns a time-limited download URL for path.
	URL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
