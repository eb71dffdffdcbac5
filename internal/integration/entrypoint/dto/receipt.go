package dto

import (
	"time"

	"github.com/spendtrack/backend/internal/application/usecase/receipt"
)

// ReceiptResponse represents a stored receipt image.
type ReceiptResponse struct {
	ID            int64  `json:"id"`
	TransactionID int64  `json:"transaction_id"`
	Path          string `json:"path"`
	ContentType   string `json:"content_type"`
	Size          int64  `json:"size"`
	URL           string `json:"url,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// DeleteReceiptsResponse reports how many receipt images were removed.
type DeleteReceiptsResponse struct {
	DeletedCount int `json:"deleted_count"`
}

// ToReceiptListResponse converts receipt outputs to response DTOs.
func ToReceiptListResponse(receipts []*receipt.ReceiptOutput) []ReceiptResponse {
	response := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		response[i] = ReceiptResponse{
			ID:            r.ID,
			TransactionID: r.TransactionID,
			Path:          r.Path,
			ContentType:   r.ContentType,
			Size:          r.Size,
			URL:           r.URL,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		}
	}
	return response
}
