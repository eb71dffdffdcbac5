package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// RollupSlice is the total of one parent category.
type RollupSlice struct {
	Category         string
	Amount           decimal.Decimal
	TransactionCount int
}

// RollupByParent sums the transactions of txType per parent category.
// parentOf maps a child category to its parent; unknown categories stand for
// themselves. Canceled transactions still open their slice but add nothing.
// Slices are ordered by amount descending, then by name.
func RollupByParent(txns []*entity.Transaction, txType entity.TransactionType, parentOf map[string]string) []RollupSlice {
	totals := make(map[string]*RollupSlice)

	for _, tx := range txns {
		if tx == nil || tx.Type != txType {
			continue
		}
		parent, ok := parentOf[tx.Category]
		if !ok || parent == "" {
			parent = tx.Category
		}

		slice, ok := totals[parent]
		if !ok {
			slice = &RollupSlice{Category: parent}
			totals[parent] = slice
		}
		if tx.Counts() {
			slice.Amount = slice.Amount.Add(tx.Amount)
			slice.TransactionCount++
		}
	}

	slices := make([]RollupSlice, 0, len(totals))
	for _, s := range totals {
		slices = append(slices, *s)
	}
	sort.Slice(slices, func(i, j int) bool {
		if c := slices[i].Amount.Cmp(slices[j].Amount); c != 0 {
			return c > 0
		}
		return slices[i].Category < slices[j].Category
	})

	return slices
}

// RollupTotal sums the amounts of all slices.
func RollupTotal(slices []RollupSlice) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Amount)
	}
	return total
}
