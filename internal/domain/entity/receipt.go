package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptImage links a stored image object to a transaction.
type ReceiptImage struct {
	ID            int64
	TransactionID int64
	UserID        uuid.UUID
	Path          string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// NewReceiptImage creates a new ReceiptImage entity.
func NewReceiptImage(userID uuid.UUID, transactionID int64, path, contentType string, size int64) *ReceiptImage {
	return &ReceiptImage{
		TransactionID: transactionID,
		UserID:        userID,
		Path:          path,
		ContentType:   contentType,
		Size:          size,
		CreatedAt:     time.Now().UTC(),
	}
}
