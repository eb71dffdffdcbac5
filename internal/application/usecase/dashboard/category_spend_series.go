package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// CategorySpendPoint is one day of a category's cumulative spend.
type CategorySpendPoint struct {
	Date   time.Time
	Amount decimal.Decimal
}

// BuildCategorySpendSeries returns the cumulative spend of category for each
// day of rng, starting from seed. With a time frame the accumulator drops
// back to zero after the last day of each period, which yields a sawtooth.
// A nil time frame never resets.
func BuildCategorySpendSeries(
	category string,
	tf *entity.TimeFrame,
	rng DateRange,
	daily *DailyTotals,
	seed decimal.Decimal,
) []CategorySpendPoint {
	days := EnumerateDays(rng.Start, rng.End)
	if len(days) == 0 {
		return []CategorySpendPoint{}
	}

	var periodEnd time.Time
	if tf != nil {
		periodEnd = PeriodEnd(days[0], *tf)
	}

	points := make([]CategorySpendPoint, 0, len(days))
	acc := seed
	for _, day := range days {
		acc = acc.Add(daily.CategoryExpense(day, category))
		points = append(points, CategorySpendPoint{Date: day, Amount: acc})

		if tf != nil && day.Equal(periodEnd) {
			acc = decimal.Zero
			periodEnd = PeriodEnd(day.AddDate(0, 0, 1), *tf)
		}
	}

	return points
}
