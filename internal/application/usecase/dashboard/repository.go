package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// DashboardRepository defines the read operations the charts need.
type DashboardRepository interface {
	// GetDateRange returns the date range of user's transactions.
	GetDateRange(ctx context.Context, userID uuid.UUID) (*entity.TransactionDateRange, error)

	// ListTransactionsInRange returns every transaction of the user dated
	// within [start, end], Canceled ones included.
	ListTransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// SumAmount evaluates a seed query over the user's non-canceled transactions.
	SumAmount(ctx context.Context, userID uuid.UUID, query SeedQuery) (decimal.Decimal, error)

	// GetPeriodSummary returns non-canceled totals and counts within [start, end].
	GetPeriodSummary(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.PeriodSummary, error)
}

// Clock returns the current time. Use cases read "today" through it.
type Clock func() time.Time
