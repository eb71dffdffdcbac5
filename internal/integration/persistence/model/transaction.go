// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	Date        time.Time        `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2"`
	Type        string           `gorm:"type:varchar(10);not null"`
	Status      string           `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Category    string           `gorm:"type:varchar(100);not null;index"`
	Subtotal    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Tax         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Tip         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Merchant    string           `gorm:"type:varchar(255)"`
	Description string           `gorm:"type:varchar(255);not null"`
	Notes       string           `gorm:"type:text"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        utcDay(m.Date),
		Type:        entity.TransactionType(m.Type),
		Status:      entity.TransactionStatus(m.Status),
		Amount:      m.Amount,
		Category:    m.Category,
		Subtotal:    m.Subtotal,
		Tax:         m.Tax,
		Tip:         m.Tip,
		Merchant:    m.Merchant,
		Description: m.Description,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          t.ID,
		UserID:      t.UserID,
		Date:        utcDay(t.Date),
		Type:        string(t.Type),
		Status:      string(t.Status),
		Amount:      t.Amount,
		Category:    t.Category,
		Subtotal:    t.Subtotal,
		Tax:         t.Tax,
		Tip:         t.Tip,
		Merchant:    t.Merchant,
		Description: t.Description,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// utcDay normalises a date column to UTC midnight.
func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
