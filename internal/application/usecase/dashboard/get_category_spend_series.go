package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// GetCategorySpendSeriesInput represents the input for a category spend chart.
type GetCategorySpendSeriesInput struct {
	UserID   uuid.UUID
	Category string
	Range    RangeInput
}

// GetCategorySpendSeriesOutput represents a category's cumulative spend chart.
// TimeFrame and Limit are nil when the category has no spend limit.
type GetCategorySpendSeriesOutput struct {
	Range         *DateRange
	Category      string
	TimeFrame     *entity.TimeFrame
	Limit         *decimal.Decimal
	StartingSpend decimal.Decimal
	Points        []CategorySpendPoint
}

// GetCategorySpendSeriesUseCase builds the cumulative spend of one category,
// resetting at the boundaries of its spend limit's time frame.
type GetCategorySpendSeriesUseCase struct {
	dashboardRepo  DashboardRepository
	spendLimitRepo adapter.SpendLimitRepository
	clock          Clock
}

// NewGetCategorySpendSeriesUseCase creates a new GetCategorySpendSeriesUseCase instance.
func NewGetCategorySpendSeriesUseCase(
	dashboardRepo DashboardRepository,
	spendLimitRepo adapter.SpendLimitRepository,
	clock Clock,
) *GetCategorySpendSeriesUseCase {
	return &GetCategorySpendSeriesUseCase{
		dashboardRepo:  dashboardRepo,
		spendLimitRepo: spendLimitRepo,
		clock:          clockOrSystem(clock),
	}
}

// Execute retrieves the category spend series for the requested window.
func (uc *GetCategorySpendSeriesUseCase) Execute(
	ctx context.Context,
	input GetCategorySpendSeriesInput,
) (*GetCategorySpendSeriesOutput, error) {
	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingCategory,
			domainerror.ErrMissingCategory.Error(),
			nil,
		)
	}

	rng, ok, err := resolveRange(ctx, uc.dashboardRepo, input.UserID, uc.clock(), input.Range)
	if err != nil {
		return nil, err
	}

	limit, err := uc.spendLimitRepo.FindByUserAndCategory(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to get spend limit: %w", err)
	}

	output := &GetCategorySpendSeriesOutput{
		Category:      input.Category,
		StartingSpend: decimal.Zero,
		Points:        []CategorySpendPoint{},
	}
	var tf *entity.TimeFrame
	if limit != nil {
		timeFrame := limit.TimeFrame
		amount := limit.Limit
		tf = &timeFrame
		output.TimeFrame = &timeFrame
		output.Limit = &amount
	}
	if !ok {
		return output, nil
	}

	var (
		txns []*entity.Transaction
		seed = decimal.Zero
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
	if query, needed := CategorySpendSeed(rng, input.Category, tf); needed {
		g.Go(func() error {
			var err error
			seed, err = uc.dashboardRepo.SumAmount(gctx, input.UserID, query)
			if err != nil {
				return fmt.Errorf("failed to compute starting spend: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	output.Range = &rng
	output.StartingSpend = seed
	output.Points = BuildCategorySpendSeries(input.Category, tf, rng, BucketTransactions(txns, rng), seed)
	return output, nil
}
