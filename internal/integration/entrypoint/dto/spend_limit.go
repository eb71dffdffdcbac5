package dto

import (
	"time"

	"github.com/spendtrack/backend/internal/application/usecase/spendlimit"
)

// UpsertSpendLimitRequest is the body of PUT /spend-limits.
type UpsertSpendLimitRequest struct {
	Category  string      `json:"category"`
	Limit     AmountInput `json:"limit"`
	TimeFrame string      `json:"time_frame"`
}

// SpendLimitResponse represents a single spend limit.
type SpendLimitResponse struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	TimeFrame string  `json:"time_frame"`
	UpdatedAt string  `json:"updated_at"`
}

// ToSpendLimitResponse converts a SpendLimitOutput to its response DTO.
func ToSpendLimitResponse(l *spendlimit.SpendLimitOutput) SpendLimitResponse {
	return SpendLimitResponse{
		Category:  l.Category,
		Limit:     toFloat(l.Limit),
		TimeFrame: string(l.TimeFrame),
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}
}

// ToSpendLimitListResponse converts a ListSpendLimitsOutput to its response DTO.
func ToSpendLimitListResponse(output *spendlimit.ListSpendLimitsOutput) []SpendLimitResponse {
	limits := make([]SpendLimitResponse, len(output.Limits))
	for i, l := range output.Limits {
		limits[i] = ToSpendLimitResponse(l)
	}
	return limits
}
