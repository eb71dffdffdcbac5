package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// ReceiptImageModel represents the receipt_images table in the database.
type ReceiptImageModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	TransactionID int64     `gorm:"not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Path          string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	ContentType   string    `gorm:"type:varchar(50);not null"`
	Size          int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReceiptImageModel.
func (ReceiptImageModel) TableName() string {
	return "receipt_images"
}

// ToEntity converts a ReceiptImageModel to a domain ReceiptImage entity.
func (m *ReceiptImageModel) ToEntity() *entity.ReceiptImage {
	return &entity.ReceiptImage{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Path:          m.Path,
		ContentType:   m.ContentType,
		Size:          m.Size,
		CreatedAt:     m.CreatedAt,
	}
}

// ReceiptImageFromEntity converts a domain ReceiptImage entity to a ReceiptImageModel.
func ReceiptImageFromEntity(r *entity.ReceiptImage) *ReceiptImageModel {
	return &ReceiptImageModel{
		ID:            r.ID,
		TransactionID: r.TransactionID,
		UserID:        r.UserID,
		Path:          r.Path,
		ContentType:   r.ContentType,
		Size:          r.Size,
		CreatedAt:     r.CreatedAt,
	}
}
