package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// SpendLimitModel represents the category_spend_limits table in the database.
type SpendLimitModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_spend_limits_user_category,priority:1"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_spend_limits_user_category,priority:2"`
	Limit     decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	TimeFrame string          `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SpendLimitModel.
func (SpendLimitModel) TableName() string {
	return "category_spend_limits"
}

// ToEntity converts a SpendLimitModel to a domain CategorySpendLimit entity.
func (m *SpendLimitModel) ToEntity() *entity.CategorySpendLimit {
	return &entity.CategorySpendLimit{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Limit:     m.Limit,
		TimeFrame: entity.TimeFrame(m.TimeFrame),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SpendLimitFromEntity converts a domain CategorySpendLimit entity to a SpendLimitModel.
func SpendLimitFromEntity(l *entity.CategorySpendLimit) *SpendLimitModel {
	return &SpendLimitModel{
		ID:        l.ID,
		UserID:    l.UserID,
		Category:  l.Category,
		Limit:     l.Limit,
		TimeFrame: string(l.TimeFrame),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
