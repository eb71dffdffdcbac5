package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// memoryDashboardRepository answers every query from an in-memory slice.
type memoryDashboardRepository struct {
	mu      sync.Mutex
	txns    []*entity.Transaction
	queries []SeedQuery
	err     error
}

func (r *memoryDashboardRepository) owned(userID uuid.UUID) []*entity.Transaction {
	var out []*entity.Transaction
	for _, tx := range r.txns {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out
}

func (r *memoryDashboardRepository) GetDateRange(_ context.Context, userID uuid.UUID) (*entity.TransactionDateRange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	result := &entity.TransactionDateRange{}
	for _, tx := range r.owned(userID) {
		date := tx.Date
		if result.Earliest == nil || date.Before(*result.Earliest) {
			result.Earliest = &date
		}
		if result.Newest == nil || date.After(*result.Newest) {
			result.Newest = &date
		}
		result.Total++
	}
	return result, nil
}

func (r *memoryDashboardRepository) ListTransactionsInRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	rng := DateRange{Start: start, End: end}
	var out []*entity.Transaction
	for _, tx := range r.owned(userID) {
		if rng.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *memoryDashboardRepository) SumAmount(_ context.Context, userID uuid.UUID, q SeedQuery) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return decimal.Zero, r.err
	}
	r.queries = append(r.queries, q)

	sum := decimal.Zero
	for _, tx := range r.owned(userID) {
		if !tx.Counts() || tx.Type != q.Type || !tx.Date.Before(q.Before) {
			continue
		}
		if q.Category != nil && tx.Category != *q.Category {
			continue
		}
		if q.From != nil && tx.Date.Before(*q.From) {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

func (r *memoryDashboardRepository) GetPeriodSummary(_ context.Context, userID uuid.UUID, start, end time.Time) (*entity.PeriodSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	rng := DateRange{Start: start, End: end}
	summary := &entity.PeriodSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range r.owned(userID) {
		if !tx.Counts() || !rng.Contains(tx.Date) {
			continue
		}
		if tx.Type == entity.TransactionTypeIncome {
			summary.Income = summary.Income.Add(tx.Amount)
			summary.IncomeCount++
		} else {
			summary.Expense = summary.Expense.Add(tx.Amount)
			summary.ExpenseCount++
		}
	}
	return summary, nil
}

type memorySpendLimitRepository struct {
	limits map[string]*entity.CategorySpendLimit
}

func (r *memorySpendLimitRepository) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.CategorySpendLimit, error) {
	out := make([]*entity.CategorySpendLimit, 0, len(r.limits))
	for _, l := range r.limits {
		out = append(out, l)
	}
	return out, nil
}

func (r *memorySpendLimitRepository) FindByUserAndCategory(_ context.Context, _ uuid.UUID, category string) (*entity.CategorySpendLimit, error) {
	return r.limits[category], nil
}

func (r *memorySpendLimitRepository) Upsert(_ context.Context, limit *entity.CategorySpendLimit) error {
	r.limits[limit.Category] = limit
	return nil
}

type memoryCategoryRepository struct {
	categories []*entity.Category
}

func (r *memoryCategoryRepository) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *memoryCategoryRepository) ExistsByNameAndType(_ context.Context, name string, categoryType entity.TransactionType) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryCategoryRepository) SeedIfEmpty(_ context.Context, categories []*entity.Category) (int, error) {
	if len(r.categories) > 0 {
		return 0, nil
	}
	r.categories = categories
	return len(categories), nil
}

func fixedClock(date string) Clock {
	return func() time.Time {
		return d(date).Add(15 * time.Hour)
	}
}

func userTx(userID uuid.UUID, date string, txType entity.TransactionType, amount int64, status entity.TransactionStatus, category string) *entity.Transaction {
	t := tx(date, txType, amount, status, category)
	t.UserID = userID
	return t
}
