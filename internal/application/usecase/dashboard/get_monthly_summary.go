package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// GetMonthlySummaryInput represents the input for the month-over-month cards.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
}

// MonthSummary holds the totals of one calendar month.
type MonthSummary struct {
	Range        DateRange
	Income       decimal.Decimal
	Expense      decimal.Decimal
	IncomeCount  int64
	ExpenseCount int64
}

// SummaryChange compares one figure between the two months.
// Percent is nil when the previous month's figure is zero.
type SummaryChange struct {
	Diff    decimal.Decimal
	Percent *float64
}

// GetMonthlySummaryOutput represents the current month against the previous one.
type GetMonthlySummaryOutput struct {
	Current            MonthSummary
	Previous           MonthSummary
	IncomeChange       SummaryChange
	ExpenseChange      SummaryChange
	IncomeCountChange  SummaryChange
	ExpenseCountChange SummaryChange
}

// GetMonthlySummaryUseCase compares this month's totals with last month's.
type GetMonthlySummaryUseCase struct {
	dashboardRepo DashboardRepository
	clock         Clock
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(dashboardRepo DashboardRepository, clock Clock) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clockOrSystem(clock),
	}
}

// Execute retrieves both months concurrently.
func (uc *GetMonthlySummaryUseCase) Execute(
	ctx context.Context,
	input GetMonthlySummaryInput,
) (*GetMonthlySummaryOutput, error) {
	today := Day(uc.clock())
	current := DateRange{Start: monthStart(today, 0), End: monthStart(today, 1).AddDate(0, 0, -1)}
	previous := DateRange{Start: monthStart(today, -1), End: monthStart(today, 0).AddDate(0, 0, -1)}

	var currentSummary, previousSummary *entity.PeriodSummary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentSummary, err = uc.dashboardRepo.GetPeriodSummary(gctx, input.UserID, current.Start, current.End)
		if err != nil {
			return fmt.Errorf("failed to get current month summary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		previousSummary, err = uc.dashboardRepo.GetPeriodSummary(gctx, input.UserID, previous.Start, previous.End)
		if err != nil {
			return fmt.Errorf("failed to get previous month summary: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cur := toMonthSummary(current, currentSummary)
	prev := toMonthSummary(previous, previousSummary)

	return &GetMonthlySummaryOutput{
		Current:            cur,
		Previous:           prev,
		IncomeChange:       compare(cur.Income, prev.Income),
		ExpenseChange:      compare(cur.Expense, prev.Expense),
		IncomeCountChange:  compare(decimal.NewFromInt(cur.IncomeCount), decimal.NewFromInt(prev.IncomeCount)),
		ExpenseCountChange: compare(decimal.NewFromInt(cur.ExpenseCount), decimal.NewFromInt(prev.ExpenseCount)),
	}, nil
}

func toMonthSummary(rng DateRange, s *entity.PeriodSummary) MonthSummary {
	return MonthSummary{
		Range:        rng,
		Income:       s.Income,
		Expense:      s.Expense,
		IncomeCount:  s.IncomeCount,
		ExpenseCount: s.ExpenseCount,
	}
}

// compare returns current-previous and the percentage change.
func compare(current, previous decimal.Decimal) SummaryChange {
	change := SummaryChange{Diff: current.Sub(previous)}
	if !previous.IsZero() {
		pct := change.Diff.Mul(decimal.NewFromInt(100)).Div(previous).Round(2).InexactFloat64()
		change.Percent = &pct
	}
	return change
}
