package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendtrack/backend/internal/application/usecase/dashboard"
	"github.com/spendtrack/backend/internal/domain/entity"
	"github.com/spendtrack/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDateRange returns the date range of user's transactions.
func (r *dashboardRepository) GetDateRange(ctx context.Context, userID uuid.UUID) (*entity.TransactionDateRange, error) {
	result := &entity.TransactionDateRange{}

	scope := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("user_id = ?", userID)
	if err := scope.Count(&result.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	if result.Total == 0 {
		return result, nil
	}

	var oldest, newest model.TransactionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").First(&oldest).Error; err != nil {
		return nil, fmt.Errorf("failed to get oldest transaction: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").First(&newest).Error; err != nil {
		return nil, fmt.Errorf("failed to get newest transaction: %w", err)
	}

	earliest, latest := oldest.ToEntity().Date, newest.ToEntity().Date
	result.Earliest = &earliest
	result.Newest = &latest
	return result, nil
}

// ListTransactionsInRange returns the user's transactions dated within [start, end].
func (r *dashboardRepository) ListTransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Find(&transactionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// SumAmount evaluates a seed query over the user's non-canceled transactions.
func (r *dashboardRepository) SumAmount(ctx context.Context, userID uuid.UUID, query dashboard.SeedQuery) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	q := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Where("status <> ?", string(entity.TransactionStatusCanceled)).
		Where("type = ?", string(query.Type)).
		Where("date < ?", query.Before)
	if query.Category != nil {
		q = q.Where("category = ?", *query.Category)
	}
	if query.From != nil {
		q = q.Where("date >= ?", *query.From)
	}

	if err := q.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return result.Total.Round(2), nil
}

// GetPeriodSummary returns non-canceled totals and counts within [start, end].
func (r *dashboardRepository) GetPeriodSummary(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.PeriodSummary, error) {
	var rows []struct {
		Type  string          `gorm:"column:type"`
		Total decimal.Decimal `gorm:"column:total"`
		Count int64           `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Where("status <> ?", string(entity.TransactionStatusCanceled)).
		Where("date >= ? AND date <= ?", start, end).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize period: %w", err)
	}

	summary := &entity.PeriodSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			summary.Income = row.Total.Round(2)
			summary.IncomeCount = row.Count
		case entity.TransactionTypeExpense:
			summary.Expense = row.Total.Round(2)
			summary.ExpenseCount = row.Count
		default:
			return nil, errors.New("unexpected transaction type " + row.Type)
		}
	}
	return summary, nil
}
