package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type GetDataRangeInput struct {
	UserID uuid.UUID
}

// GetDataRangeOutput describes the span of a user's history. Dates are nil
// and DaysCovered is zero when the user has no transactions.
type GetDataRangeOutput struct {
	OldestDate        *time.Time
	NewestDate        *time.Time
	DaysCovered       int
	TotalTransactions int64
	HasData           bool
}

// GetDataRangeUseCase reports the first and last transaction dates so
// clients can bound the "all" selector and custom date pickers.
type GetDataRangeUseCase struct {
	dashboardRepo DashboardRepository
}

func NewGetDataRangeUseCase(dashboardRepo DashboardRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{dashboardRepo: dashboardRepo}
}

func (uc *GetDataRangeUseCase) Execute(ctx context.Context, input GetDataRangeInput) (*GetDataRangeOutput, error) {
	span, err := uc.dashboardRepo.GetDateRange(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	output := &GetDataRangeOutput{TotalTransactions: span.Total}
	if span.Earliest == nil || span.Newest == nil {
		return output, nil
	}

	oldest, newest := Day(*span.Earliest), Day(*span.Newest)
	output.OldestDate = &oldest
	output.NewestDate = &newest
	output.DaysCovered = DateRange{Start: oldest, End: newest}.Days()
	output.HasData = true
	return output, nil
}
