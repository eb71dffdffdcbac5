// Package spendlimit contains the use cases for category spend limits.
package spendlimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
)

// ListSpendLimitsInput represents the input for listing spend limits.
type ListSpendLimitsInput struct {
	UserID uuid.UUID
}

// SpendLimitOutput represents a single spend limit in the output.
type SpendLimitOutput struct {
	Category  string
	Limit     decimal.Decimal
	TimeFrame entity.TimeFrame
	UpdatedAt time.Time
}

// ListSpendLimitsOutput represents the output of listing spend limits.
type ListSpendLimitsOutput struct {
	Limits []*SpendLimitOutput
}

// ListSpendLimitsUseCase handles listing the user's spend limits.
type ListSpendLimitsUseCase struct {
	spendLimitRepo adapter.SpendLimitRepository
}

// NewListSpendLimitsUseCase creates a new ListSpendLimitsUseCase instance.
func NewListSpendLimitsUseCase(spendLimitRepo adapter.SpendLimitRepository) *ListSpendLimitsUseCase {
	return &ListSpendLimitsUseCase{
		spendLimitRepo: spendLimitRepo,
	}
}

// Execute lists the user's spend limits.
func (uc *ListSpendLimitsUseCase) Execute(ctx context.Context, input ListSpendLimitsInput) (*ListSpendLimitsOutput, error) {
	limits, err := uc.spendLimitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spend limits: %w", err)
	}

	output := &ListSpendLimitsOutput{
		Limits: make([]*SpendLimitOutput, 0, len(limits)),
	}
	for _, l := range limits {
		output.Limits = append(output.Limits, toSpendLimitOutput(l))
	}
	return output, nil
}

func toSpendLimitOutput(l *entity.CategorySpendLimit) *SpendLimitOutput {
	return &SpendLimitOutput{
		Category:  l.Category,
		Limit:     l.Limit,
		TimeFrame: l.TimeFrame,
		UpdatedAt: l.UpdatedAt,
	}
}
