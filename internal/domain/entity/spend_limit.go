package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeFrame is the period over which a spend limit accumulates.
type TimeFrame string

const (
	TimeFrameYearly  TimeFrame = "Yearly"
	TimeFrameMonthly TimeFrame = "Monthly"
	TimeFrameWeekly  TimeFrame = "Weekly"
	TimeFrameDaily   TimeFrame = "Daily"
)

// IsValid reports whether the time frame is known.
func (tf TimeFrame) IsValid() bool {
	switch tf {
	case TimeFrameYearly, TimeFrameMonthly, TimeFrameWeekly, TimeFrameDaily:
		return true
	}
	return false
}

// CategorySpendLimit is a user's budget for one expense category. There is
// at most one limit per (user, category).
type CategorySpendLimit struct {
	ID        int64
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	TimeFrame TimeFrame
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategorySpendLimit creates a new spend limit.
func NewCategorySpendLimit(userID uuid.UUID, category string, limit decimal.Decimal, timeFrame TimeFrame) *CategorySpendLimit {
	now := time.Now().UTC()

	return &CategorySpendLimit{
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		TimeFrame: timeFrame,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
