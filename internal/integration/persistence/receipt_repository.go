package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	"github.com/spendtrack/backend/internal/integration/persistence/model"
)

// receiptRepository implements the adapter.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository instance.
func NewReceiptRepository(db *gorm.DB) adapter.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// Create records a stored receipt image.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.ReceiptImage) error {
	receiptModel := model.ReceiptImageFromEntity(receipt)
	if err := r.db.WithContext(ctx).Create(receiptModel).Error; err != nil {
		return err
	}
	receipt.ID = receiptModel.ID
	return nil
}

// CreateBatch inserts every receipt in a single statement.
func (r *receiptRepository) CreateBatch(ctx context.Context, receipts []*entity.ReceiptImage) error {
	if len(receipts) == 0 {
		return nil
	}

	receiptModels := make([]*model.ReceiptImageModel, len(receipts))
	for i, receipt := range receipts {
		receiptModels[i] = model.ReceiptImageFromEntity(receipt)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(receiptModels).Error
	})
	if err != nil {
		return err
	}
	for i, receiptModel := range receiptModels {
		receipts[i].ID = receiptModel.ID
	}
	return nil
}

// FindByUser retrieves the user's receipts, optionally for one transaction.
func (r *receiptRepository) FindByUser(ctx context.Context, userID uuid.UUID, transactionID *int64) ([]*entity.ReceiptImage, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if transactionID != nil {
		query = query.Where("transaction_id = ?", *transactionID)
	}

	var receiptModels []model.ReceiptImageModel
	if err := query.Order("transaction_id ASC, id ASC").Find(&receiptModels).Error; err != nil {
		return nil, err
	}

	receipts := make([]*entity.ReceiptImage, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToEntity()
	}
	return receipts, nil
}

// DeleteByTransactionIDs removes the matching rows and returns what was removed.
func (r *receiptRepository) DeleteByTransactionIDs(ctx context.Context, userID uuid.UUID, transactionIDs []int64) ([]*entity.ReceiptImage, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}

	var receiptModels []model.ReceiptImageModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND transaction_id IN ?", userID, transactionIDs).Order("id ASC").Find(&receiptModels).Error; err != nil {
			return err
		}
		if len(receiptModels) == 0 {
			return nil
		}
		return tx.Where("user_id = ? AND transaction_id IN ?", userID, transactionIDs).
			Delete(&model.ReceiptImageModel{}).Error
	})
	if err != nil {
		return nil, err
	}

	receipts := make([]*entity.ReceiptImage, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToEntity()
	}
	return receipts, nil
}
