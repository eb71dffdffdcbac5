package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// GetBalanceSeriesInput represents the input for the running balance chart.
type GetBalanceSeriesInput struct {
	UserID     uuid.UUID
	Range      RangeInput
	Categories []string
}

// GetBalanceSeriesOutput represents the running balance chart.
// Range is nil when the selection resolves to no days.
type GetBalanceSeriesOutput struct {
	Range           *DateRange
	StartingBalance decimal.Decimal
	Points          []BalancePoint
	ChartConfig     ChartConfig
}

// GetBalanceSeriesUseCase builds the day-by-day running balance of a user.
type GetBalanceSeriesUseCase struct {
	dashboardRepo DashboardRepository
	clock         Clock
}

// NewGetBalanceSeriesUseCase creates a new GetBalanceSeriesUseCase instance.
func NewGetBalanceSeriesUseCase(dashboardRepo DashboardRepository, clock Clock) *GetBalanceSeriesUseCase {
	return &GetBalanceSeriesUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clockOrSystem(clock),
	}
}

// Execute resolves the window, loads the window's transactions and the
// starting balance concurrently, and folds them into a dense series.
func (uc *GetBalanceSeriesUseCase) Execute(
	ctx context.Context,
	input GetBalanceSeriesInput,
) (*GetBalanceSeriesOutput, error) {
	rng, ok, err := resolveRange(ctx, uc.dashboardRepo, input.UserID, uc.clock(), input.Range)
	if err != nil {
		return nil, err
	}

	output := &GetBalanceSeriesOutput{
		StartingBalance: decimal.Zero,
		Points:          []BalancePoint{},
		ChartConfig:     BuildChartConfig(input.Categories),
	}
	if !ok {
		return output, nil
	}

	var (
		txns []*entity.Transaction
		seed decimal.Decimal
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
		seed, err = uc.dashboardRepo.SumAmount(gctx, input.UserID, BalanceSeed(rng))
		if err != nil {
			return fmt.Errorf("failed to compute starting balance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	output.Range = &rng
	output.StartingBalance = seed
	output.Points = BuildBalanceSeries(txns, rng, seed, input.Categories)
	return output, nil
}
