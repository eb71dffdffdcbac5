package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// GetSpendBreakdownInput represents the input for the parent category breakdown.
type GetSpendBreakdownInput struct {
	UserID uuid.UUID
	Type   entity.TransactionType
	Range  RangeInput
}

// BreakdownSlice is one parent category of the breakdown.
type BreakdownSlice struct {
	Category         string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
	Color            string
}

// GetSpendBreakdownOutput represents the rolled up totals of one transaction type.
type GetSpendBreakdownOutput struct {
	Range  *DateRange
	Type   entity.TransactionType
	Total  decimal.Decimal
	Slices []BreakdownSlice
}

// GetSpendBreakdownUseCase rolls a window's transactions up to parent categories.
type GetSpendBreakdownUseCase struct {
	dashboardRepo DashboardRepository
	categoryRepo  adapter.CategoryRepository
	clock         Clock
}

// NewGetSpendBreakdownUseCase creates a new GetSpendBreakdownUseCase instance.
func NewGetSpendBreakdownUseCase(
	dashboardRepo DashboardRepository,
	categoryRepo adapter.CategoryRepository,
	clock Clock,
) *GetSpendBreakdownUseCase {
	return &GetSpendBreakdownUseCase{
		dashboardRepo: dashboardRepo,
		categoryRepo:  categoryRepo,
		clock:         clockOrSystem(clock),
	}
}

// Execute retrieves the breakdown for the requested window and type.
func (uc *GetSpendBreakdownUseCase) Execute(
	ctx context.Context,
	input GetSpendBreakdownInput,
) (*GetSpendBreakdownOutput, error) {
	if input.Type == "" {
		input.Type = entity.TransactionTypeExpense
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidBreakdownType,
			domainerror.ErrInvalidBreakdownType.Error(),
			nil,
		)
	}

	rng, ok, err := resolveRange(ctx, uc.dashboardRepo, input.UserID, uc.clock(), input.Range)
	if err != nil {
		return nil, err
	}

	output := &GetSpendBreakdownOutput{
		Type:   input.Type,
		Total:  decimal.Zero,
		Slices: []BreakdownSlice{},
	}
	if !ok {
		return output, nil
	}

	var (
		txns       []*entity.Transaction
		categories []*entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = uc.dashboardRepo.ListTransactionsInRange(gctx, input.UserID, rng.Start, rng.End)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hierarchy := entity.BuildCategoryHierarchy(categories)
	rollup := RollupByParent(txns, input.Type, hierarchy.ParentOf)
	total := RollupTotal(rollup)

	names := make([]string, 0, len(rollup))
	for _, s := range rollup {
		names = append(names, s.Category)
	}
	config := BuildChartConfig(names)

	for _, s := range rollup {
		var percentage float64
		if !total.IsZero() {
			percentage = s.Amount.Mul(decimal.NewFromInt(100)).Div(total).Round(2).InexactFloat64()
		}
		output.Slices = append(output.Slices, BreakdownSlice{
			Category:         s.Category,
			Amount:           s.Amount,
			Percentage:       percentage,
			TransactionCount: s.TransactionCount,
			Color:            config[s.Category].Color,
		})
	}

	output.Range = &rng
	output.Total = total
	return output, nil
}
