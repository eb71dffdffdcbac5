package dashboard

import (
	"time"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// SeedQuery describes the sum of non-canceled transactions dated before a
// visible window. Charts use it as the starting value of a running total so
// that the window continues the user's history.
type SeedQuery struct {
	Type     entity.TransactionType
	Category *string
	// From is inclusive; nil means no lower bound.
	From *time.Time
	// Before is exclusive.
	Before time.Time
}

// BalanceSeed is the seed of the running balance: every prior income.
func BalanceSeed(rng DateRange) SeedQuery {
	return SeedQuery{
		Type:   entity.TransactionTypeIncome,
		Before: rng.Start,
	}
}

// CategorySpendSeed is the seed of a category's cumulative spend: the
// category's expenses from the start of the limit period containing
// rng.Start up to the day before rng.Start. Without a time frame the period
// never resets, so every prior expense of the category counts.
//
// The boolean is false when the period starts exactly on rng.Start, in which
// case the seed is zero and no query is needed.
func CategorySpendSeed(rng DateRange, category string, tf *entity.TimeFrame) (SeedQuery, bool) {
	q := SeedQuery{
		Type:     entity.TransactionTypeExpense,
		Category: &category,
		Before:   rng.Start,
	}
	if tf == nil {
		return q, true
	}

	from := PeriodStart(rng.Start, *tf)
	if !from.Before(rng.Start) {
		return SeedQuery{}, false
	}
	q.From = &from
	return q, true
}
