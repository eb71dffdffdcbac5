package spendlimit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// UpsertSpendLimitInput represents the input for setting a spend limit.
type UpsertSpendLimitInput struct {
	UserID    uuid.UUID
	Category  string
	Limit     string
	TimeFrame entity.TimeFrame
}

// UpsertSpendLimitOutput represents the stored spend limit.
type UpsertSpendLimitOutput struct {
	Limit *SpendLimitOutput
}

// UpsertSpendLimitUseCase sets the single limit of a (user, category) pair.
type UpsertSpendLimitUseCase struct {
	spendLimitRepo adapter.SpendLimitRepository
	categoryRepo   adapter.CategoryRepository
}

// NewUpsertSpendLimitUseCase creates a new UpsertSpendLimitUseCase instance.
func NewUpsertSpendLimitUseCase(
	spendLimitRepo adapter.SpendLimitRepository,
	categoryRepo adapter.CategoryRepository,
) *UpsertSpendLimitUseCase {
	return &UpsertSpendLimitUseCase{
		spendLimitRepo: spendLimitRepo,
		categoryRepo:   categoryRepo,
	}
}

// Execute validates and stores the spend limit.
func (uc *UpsertSpendLimitUseCase) Execute(ctx context.Context, input UpsertSpendLimitInput) (*UpsertSpendLimitOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewSpendLimitError(
			domainerror.ErrCodeMissingSpendLimitCategory,
			"category is required",
			domainerror.ErrMissingSpendLimitCategory,
		)
	}
	if !input.TimeFrame.IsValid() {
		return nil, domainerror.NewSpendLimitError(
			domainerror.ErrCodeInvalidTimeFrame,
			"time_frame must be one of: Yearly, Monthly, Weekly, Daily",
			domainerror.ErrInvalidTimeFrame,
		)
	}

	limit, err := parseLimit(input.Limit)
	if err != nil {
		return nil, err
	}

	if err := uc.checkCategory(ctx, category); err != nil {
		return nil, err
	}

	spendLimit := entity.NewCategorySpendLimit(input.UserID, category, limit, input.TimeFrame)
	if err := uc.spendLimitRepo.Upsert(ctx, spendLimit); err != nil {
		return nil, fmt.Errorf("failed to save spend limit: %w", err)
	}

	return &UpsertSpendLimitOutput{Limit: toSpendLimitOutput(spendLimit)}, nil
}

// checkCategory accepts only existing expense categories.
func (uc *UpsertSpendLimitUseCase) checkCategory(ctx context.Context, category string) error {
	isExpense, err := uc.categoryRepo.ExistsByNameAndType(ctx, category, entity.TransactionTypeExpense)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if isExpense {
		return nil
	}

	isIncome, err := uc.categoryRepo.ExistsByNameAndType(ctx, category, entity.TransactionTypeIncome)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if isIncome {
		return domainerror.NewSpendLimitError(
			domainerror.ErrCodeSpendLimitCategoryInvalid,
			fmt.Sprintf("category %q is an income category", category),
			domainerror.ErrCategoryNotExpense,
		)
	}
	return domainerror.NewSpendLimitError(
		domainerror.ErrCodeSpendLimitCategoryInvalid,
		fmt.Sprintf("category %q does not exist", category),
		domainerror.ErrCategoryNotFound,
	)
}

func parseLimit(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(raw), "$"), ",", "")
	limit, err := decimal.NewFromString(cleaned)
	if err != nil || limit.IsNegative() {
		return decimal.Zero, domainerror.NewSpendLimitError(
			domainerror.ErrCodeInvalidSpendLimit,
			"limit must be a non-negative amount",
			domainerror.ErrInvalidSpendLimit,
		)
	}
	return limit.Round(2), nil
}
