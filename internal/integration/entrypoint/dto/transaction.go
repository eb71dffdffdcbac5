package dto

import (
	"time"

	"github.com/spendtrack/backend/internal/application/usecase/transaction"
)

// UpsertTransactionRequest is the body of PUT /transactions. Without an id a
// new transaction is created.
type UpsertTransactionRequest struct {
	ID          *int64       `json:"id"`
	Date        string       `json:"date"`
	Type        string       `json:"type"`
	Status      string       `json:"status"`
	Amount      AmountInput  `json:"amount"`
	Category    string       `json:"category"`
	Subtotal    *AmountInput `json:"subtotal"`
	Tax         *AmountInput `json:"tax"`
	Tip         *AmountInput `json:"tip"`
	Merchant    string       `json:"merchant"`
	Description string       `json:"description"`
	Notes       string       `json:"notes"`
}

// TransactionResponse represents a single transaction.
type TransactionResponse struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Amount      float64  `json:"amount"`
	Category    string   `json:"category"`
	Subtotal    *float64 `json:"subtotal"`
	Tax         *float64 `json:"tax"`
	Tip         *float64 `json:"tip"`
	Merchant    string   `json:"merchant"`
	Description string   `json:"description"`
	Notes       string   `json:"notes"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// DeleteTransactionsResponse reports how many transactions were removed.
type DeleteTransactionsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToTransactionResponse converts a TransactionOutput to its response DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format("2006-01-02"),
		Type:        string(t.Type),
		Status:      string(t.Status),
		Amount:      toFloat(t.Amount),
		Category:    t.Category,
		Subtotal:    toFloatPtr(t.Subtotal),
		Tax:         toFloatPtr(t.Tax),
		Tip:         toFloatPtr(t.Tip),
		Merchant:    t.Merchant,
		Description: t.Description,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to its response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) []TransactionResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return transactions
}
