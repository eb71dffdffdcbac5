// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := r.db.WithContext(ctx).Create(transactionModel).Error; err != nil {
		return err
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByIDAndUser retrieves a transaction by ID that belongs to the user.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves the user's transactions ordered by date ascending.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var transactionModels []model.TransactionModel
	if err := query.Order("date ASC, id ASC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Update saves every column of an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND user_id = ?", transactionModel.ID, transactionModel.UserID).
		Select("*").
		Omit("id", "created_at").
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// DeleteWithReceipts hard-deletes the user's transactions and their receipt
// rows in one database transaction.
func (r *transactionRepository) DeleteWithReceipts(ctx context.Context, ids []int64, userID uuid.UUID) (int64, []*entity.ReceiptImage, error) {
	if len(ids) == 0 {
		return 0, nil, nil
	}

	var (
		deletedCount  int64
		receiptModels []model.ReceiptImageModel
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipts := tx.Where("user_id = ? AND transaction_id IN ?", userID, ids)
		if err := receipts.Order("id ASC").Find(&receiptModels).Error; err != nil {
			return err
		}
		if len(receiptModels) > 0 {
			if err := tx.Where("user_id = ? AND transaction_id IN ?", userID, ids).
				Delete(&model.ReceiptImageModel{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id IN ? AND user_id = ?", ids, userID).Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		deletedCount = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	removed := make([]*entity.ReceiptImage, len(receiptModels))
	for i := range receiptModels {
		removed[i] = receiptModels[i].ToEntity()
	}
	return deletedCount, removed, nil
}
