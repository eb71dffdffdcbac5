package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// DailyTotals holds per-day sums of the non-canceled transactions of a range.
type DailyTotals struct {
	income     map[time.Time]decimal.Decimal
	expense    map[time.Time]decimal.Decimal
	byCategory map[time.Time]map[string]decimal.Decimal
}

// Income returns the income of day.
func (d *DailyTotals) Income(day time.Time) decimal.Decimal {
	return d.income[Day(day)]
}

// Expense returns the expense of day.
func (d *DailyTotals) Expense(day time.Time) decimal.Decimal {
	return d.expense[Day(day)]
}

// CategoryExpense returns the expense of one category on day.
func (d *DailyTotals) CategoryExpense(day time.Time, category string) decimal.Decimal {
	return d.byCategory[Day(day)][category]
}

// BucketTransactions sums transactions within rng by calendar day. Canceled
// transactions and transactions outside the range are ignored. Input order
// does not matter.
func BucketTransactions(txns []*entity.Transaction, rng DateRange) *DailyTotals {
	totals := &DailyTotals{
		income:     make(map[time.Time]decimal.Decimal),
		expense:    make(map[time.Time]decimal.Decimal),
		byCategory: make(map[time.Time]map[string]decimal.Decimal),
	}

	for _, tx := range txns {
		if tx == nil || !tx.Counts() {
			continue
		}
		day := Day(tx.Date)
		if !rng.Contains(day) {
			continue
		}

		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.income[day] = totals.income[day].Add(tx.Amount)
		case entity.TransactionTypeExpense:
			totals.expense[day] = totals.expense[day].Add(tx.Amount)
			if totals.byCategory[day] == nil {
				totals.byCategory[day] = make(map[string]decimal.Decimal)
			}
			totals.byCategory[day][tx.Category] = totals.byCategory[day][tx.Category].Add(tx.Amount)
		}
	}

	return totals
}

// BalancePoint is one day of the running balance series.
type BalancePoint struct {
	Date       time.Time
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Balance    decimal.Decimal
	Categories map[string]decimal.Decimal
}

// BuildBalanceSeries returns one point per day of rng. The balance starts at
// startingBalance and moves by that day's income minus expense. When
// categories is non-empty each point carries the day's expense for every
// listed category, zero included; otherwise Categories is nil.
func BuildBalanceSeries(
	txns []*entity.Transaction,
	rng DateRange,
	startingBalance decimal.Decimal,
	categories []string,
) []BalancePoint {
	days := EnumerateDays(rng.Start, rng.End)
	if len(days) == 0 {
		return []BalancePoint{}
	}

	daily := BucketTransactions(txns, rng)
	points := make([]BalancePoint, 0, len(days))
	balance := startingBalance

	for _, day := range days {
		income := daily.Income(day)
		expense := daily.Expense(day)
		balance = balance.Add(income).Sub(expense)

		point := BalancePoint{
			Date:    day,
			Income:  income,
			Expense: expense,
			Balance: balance,
		}
		if len(categories) > 0 {
			point.Categories = make(map[string]decimal.Decimal, len(categories))
			for _, c := range categories {
				point.Categories[c] = daily.CategoryExpense(day, c)
			}
		}
		points = append(points, point)
	}

	return points
}
