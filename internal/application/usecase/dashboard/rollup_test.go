package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/domain/entity"
)

func TestRollupByParent(t *testing.T) {
	parentOf := map[string]string{
		"Food":        "Food",
		"Groceries":   "Food",
		"Restaurants": "Food",
		"Housing":     "Housing",
		"Rent":        "Housing",
		"Salary":      "Salary",
	}

	t.Run("children roll up to their parent and slices sort by amount", func(t *testing.T) {
		txns := []*entity.Transaction{
			tx("2024-01-01", entity.TransactionTypeExpense, 30, entity.TransactionStatusComplete, "Groceries"),
			tx("2024-01-02", entity.TransactionTypeExpense, 20, entity.TransactionStatusPending, "Restaurants"),
			tx("2024-01-03", entity.TransactionTypeExpense, 900, entity.TransactionStatusComplete, "Rent"),
			tx("2024-01-03", entity.TransactionTypeIncome, 5000, entity.TransactionStatusComplete, "Salary"),
		}

		slices := RollupByParent(txns, entity.TransactionTypeExpense, parentOf)
		require.Len(t, slices, 2)
		assert.Equal(t, "Housing", slices[0].Category)
		assert.Equal(t, "900", slices[0].Amount.String())
		assert.Equal(t, "Food", slices[1].Category)
		assert.Equal(t, "50", slices[1].Amount.String())
		assert.Equal(t, 2, slices[1].TransactionCount)
		assert.Equal(t, "950", RollupTotal(slices).String())
	})

	t.Run("canceled transactions open a zero slice", func(t *testing.T) {
		txns := []*entity.Transaction{
			tx("2024-01-01", entity.TransactionTypeExpense, 30, entity.TransactionStatusCanceled, "Rent"),
			tx("2024-01-01", entity.TransactionTypeExpense, 10, entity.TransactionStatusComplete, "Food"),
		}

		slices := RollupByParent(txns, entity.TransactionTypeExpense, parentOf)
		require.Len(t, slices, 2)
		assert.Equal(t, "Food", slices[0].Category)
		assert.Equal(t, "Housing", slices[1].Category)
		assert.True(t, slices[1].Amount.IsZero())
		assert.Zero(t, slices[1].TransactionCount)
	})

	t.Run("unknown categories stand for themselves", func(t *testing.T) {
		txns := []*entity.Transaction{
			tx("2024-01-01", entity.TransactionTypeExpense, 5, entity.TransactionStatusComplete, "Gifts"),
		}

		slices := RollupByParent(txns, entity.TransactionTypeExpense, parentOf)
		require.Len(t, slices, 1)
		assert.Equal(t, "Gifts", slices[0].Category)
	})

	t.Run("equal amounts sort by name", func(t *testing.T) {
		txns := []*entity.Transaction{
			tx("2024-01-01", entity.TransactionTypeExpense, 5, entity.TransactionStatusComplete, "Rent"),
			tx("2024-01-01", entity.TransactionTypeExpense, 5, entity.TransactionStatusComplete, "Food"),
		}

		slices := RollupByParent(txns, entity.TransactionTypeExpense, parentOf)
		require.Len(t, slices, 2)
		assert.Equal(t, "Food", slices[0].Category)
		assert.Equal(t, "Housing", slices[1].Category)
	})
}
