package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }

func seededRepository(userID uuid.UUID) *memoryDashboardRepository {
	other := uuid.New()
	return &memoryDashboardRepository{
		txns: []*entity.Transaction{
			userTx(userID, "2024-04-10", entity.TransactionTypeIncome, 3000, entity.TransactionStatusComplete, "Salary"),
			userTx(userID, "2024-04-20", entity.TransactionTypeExpense, 100, entity.TransactionStatusComplete, "Groceries"),
			userTx(userID, "2024-05-02", entity.TransactionTypeExpense, 40, entity.TransactionStatusComplete, "Groceries"),
			userTx(userID, "2024-05-03", entity.TransactionTypeExpense, 60, entity.TransactionStatusCanceled, "Groceries"),
			userTx(userID, "2024-05-05", entity.TransactionTypeIncome, 500, entity.TransactionStatusPending, "Salary"),
			userTx(userID, "2024-05-14", entity.TransactionTypeExpense, 25, entity.TransactionStatusComplete, "Restaurants"),
			userTx(other, "2024-05-01", entity.TransactionTypeIncome, 9999, entity.TransactionStatusComplete, "Salary"),
		},
	}
}

func TestGetBalanceSeriesUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("seeds the balance with prior income", func(t *testing.T) {
		uc := NewGetBalanceSeriesUseCase(seededRepository(userID), fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetBalanceSeriesInput{
			UserID: userID,
			Range:  RangeInput{Selector: TimeRange7Days},
		})
		require.NoError(t, err)
		require.NotNil(t, output.Range)
		assert.Equal(t, "2024-05-09", FormatDate(output.Range.Start))
		assert.Equal(t, "3500", output.StartingBalance.String())
		require.Len(t, output.Points, 7)
		assert.Equal(t, "3500.00", output.Points[4].Balance.StringFixed(2))
		assert.Equal(t, "3475.00", output.Points[5].Balance.StringFixed(2))
		assert.Equal(t, "3475.00", output.Points[6].Balance.StringFixed(2))
	})

	t.Run("all on a user without transactions is empty", func(t *testing.T) {
		uc := NewGetBalanceSeriesUseCase(&memoryDashboardRepository{}, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetBalanceSeriesInput{
			UserID:     userID,
			Range:      RangeInput{Selector: TimeRangeAll},
			Categories: []string{"Food"},
		})
		require.NoError(t, err)
		assert.Nil(t, output.Range)
		assert.Empty(t, output.Points)
		assert.Contains(t, output.ChartConfig, "Food")
	})

	t.Run("all starts at the user's first transaction", func(t *testing.T) {
		uc := NewGetBalanceSeriesUseCase(seededRepository(userID), fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetBalanceSeriesInput{
			UserID: userID,
			Range:  RangeInput{Selector: TimeRangeAll},
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-04-10", FormatDate(output.Range.Start))
		assert.Len(t, output.Points, 36)
		assert.True(t, output.StartingBalance.IsZero())
	})

	t.Run("store failures are returned", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		uc := NewGetBalanceSeriesUseCase(&memoryDashboardRepository{err: storeErr}, fixedClock("2024-05-15"))

		_, err := uc.Execute(ctx, GetBalanceSeriesInput{UserID: userID})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestGetCategorySpendSeriesUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	limits := &memorySpendLimitRepository{limits: map[string]*entity.CategorySpendLimit{
		"Groceries": entity.NewCategorySpendLimit(userID, "Groceries", decimal.NewFromInt(200), entity.TimeFrameMonthly),
	}}

	t.Run("range starting on the period boundary skips the seed query", func(t *testing.T) {
		repo := seededRepository(userID)
		uc := NewGetCategorySpendSeriesUseCase(repo, limits, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetCategorySpendSeriesInput{
			UserID:   userID,
			Category: "Groceries",
			Range:    RangeInput{Selector: TimeRange1Month},
		})
		require.NoError(t, err)
		assert.Empty(t, repo.queries)
		require.NotNil(t, output.TimeFrame)
		assert.Equal(t, entity.TimeFrameMonthly, *output.TimeFrame)
		assert.Equal(t, "200", output.Limit.String())
		require.Len(t, output.Points, 31)
		assert.Equal(t, "0.00", output.Points[0].Amount.StringFixed(2))
		assert.Equal(t, "40.00", output.Points[1].Amount.StringFixed(2))
		assert.Equal(t, "40.00", output.Points[30].Amount.StringFixed(2))
	})

	t.Run("mid-period range is seeded from the period start", func(t *testing.T) {
		repo := seededRepository(userID)
		uc := NewGetCategorySpendSeriesUseCase(repo, limits, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetCategorySpendSeriesInput{
			UserID:   userID,
			Category: "Groceries",
			Range: RangeInput{
				Selector: TimeRangeCustom,
				Custom:   &DateRange{Start: d("2024-05-03"), End: d("2024-05-10")},
			},
		})
		require.NoError(t, err)
		require.Len(t, repo.queries, 1)
		assert.Equal(t, "2024-05-01", FormatDate(*repo.queries[0].From))
		assert.Equal(t, "40", output.StartingSpend.String())
		for _, p := range output.Points {
			assert.Equal(t, "40.00", p.Amount.StringFixed(2))
		}
	})

	t.Run("category without a limit has no reset and no limit line", func(t *testing.T) {
		uc := NewGetCategorySpendSeriesUseCase(seededRepository(userID), limits, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetCategorySpendSeriesInput{
			UserID:   userID,
			Category: "Restaurants",
			Range:    RangeInput{Selector: TimeRange7Days},
		})
		require.NoError(t, err)
		assert.Nil(t, output.TimeFrame)
		assert.Nil(t, output.Limit)
		require.Len(t, output.Points, 7)
		assert.Equal(t, "25.00", output.Points[5].Amount.StringFixed(2))
		assert.Equal(t, "25.00", output.Points[6].Amount.StringFixed(2))
	})

	t.Run("category is required", func(t *testing.T) {
		uc := NewGetCategorySpendSeriesUseCase(seededRepository(userID), limits, fixedClock("2024-05-15"))

		_, err := uc.Execute(ctx, GetCategorySpendSeriesInput{UserID: userID, Category: "  "})
		var dashErr *domainerror.DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, domainerror.ErrCodeMissingCategory, dashErr.Code)
	})
}

func TestGetSpendBreakdownUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categories := &memoryCategoryRepository{categories: []*entity.Category{
		{Name: "Food", Type: entity.TransactionTypeExpense},
		{Name: "Groceries", Parent: strPtr("Food"), Type: entity.TransactionTypeExpense},
		{Name: "Restaurants", Parent: strPtr("Food"), Type: entity.TransactionTypeExpense},
		{Name: "Salary", Type: entity.TransactionTypeIncome},
	}}

	t.Run("expenses roll up to the parent", func(t *testing.T) {
		uc := NewGetSpendBreakdownUseCase(seededRepository(userID), categories, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetSpendBreakdownInput{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionTypeExpense, output.Type)
		assert.Equal(t, "165", output.Total.String())
		require.Len(t, output.Slices, 1)
		assert.Equal(t, "Food", output.Slices[0].Category)
		assert.Equal(t, 100.0, output.Slices[0].Percentage)
		assert.Equal(t, 3, output.Slices[0].TransactionCount)
		assert.Equal(t, chartPalette[0], output.Slices[0].Color)
	})

	t.Run("income breakdown", func(t *testing.T) {
		uc := NewGetSpendBreakdownUseCase(seededRepository(userID), categories, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetSpendBreakdownInput{UserID: userID, Type: entity.TransactionTypeIncome})
		require.NoError(t, err)
		require.Len(t, output.Slices, 1)
		assert.Equal(t, "3500", output.Slices[0].Amount.String())
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		uc := NewGetSpendBreakdownUseCase(seededRepository(userID), categories, fixedClock("2024-05-15"))

		_, err := uc.Execute(ctx, GetSpendBreakdownInput{UserID: userID, Type: "Transfer"})
		var dashErr *domainerror.DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, domainerror.ErrCodeInvalidBreakdownType, dashErr.Code)
	})
}

func TestGetMonthlySummaryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("compares this month with last month", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(seededRepository(userID), fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetMonthlySummaryInput{UserID: userID})
		require.NoError(t, err)

		assert.Equal(t, "2024-05-01", FormatDate(output.Current.Range.Start))
		assert.Equal(t, "2024-05-31", FormatDate(output.Current.Range.End))
		assert.Equal(t, "2024-04-01", FormatDate(output.Previous.Range.Start))
		assert.Equal(t, "2024-04-30", FormatDate(output.Previous.Range.End))

		assert.Equal(t, "500", output.Current.Income.String())
		assert.Equal(t, "65", output.Current.Expense.String())
		assert.Equal(t, int64(2), output.Current.ExpenseCount)

		assert.Equal(t, "-2500", output.IncomeChange.Diff.String())
		require.NotNil(t, output.IncomeChange.Percent)
		assert.Equal(t, -83.33, *output.IncomeChange.Percent)
		assert.Equal(t, -35.0, *output.ExpenseChange.Percent)
		assert.Equal(t, 100.0, *output.ExpenseCountChange.Percent)
		assert.Equal(t, 0.0, *output.IncomeCountChange.Percent)
	})

	t.Run("percentages are absent when last month is empty", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(&memoryDashboardRepository{}, fixedClock("2024-05-15"))

		output, err := uc.Execute(ctx, GetMonthlySummaryInput{UserID: userID})
		require.NoError(t, err)
		assert.Nil(t, output.IncomeChange.Percent)
		assert.Nil(t, output.ExpenseChange.Percent)
	})
}

func TestGetDataRangeUseCase(t *testing.T) {
	userID := uuid.New()
	uc := NewGetDataRangeUseCase(seededRepository(userID))

	output, err := uc.Execute(context.Background(), GetDataRangeInput{UserID: userID})
	require.NoError(t, err)
	assert.True(t, output.HasData)
	assert.Equal(t, "2024-04-10", FormatDate(*output.OldestDate))
	assert.Equal(t, "2024-05-14", FormatDate(*output.NewestDate))
	assert.Equal(t, 35, output.DaysCovered)
	assert.Equal(t, int64(6), output.TotalTransactions)

	empty, err := NewGetDataRangeUseCase(&memoryDashboardRepository{}).Execute(context.Background(), GetDataRangeInput{UserID: userID})
	require.NoError(t, err)
	assert.False(t, empty.HasData)
	assert.Zero(t, empty.DaysCovered)
	assert.Nil(t, empty.OldestDate)
}
