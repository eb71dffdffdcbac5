package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	"github.com/spendtrack/backend/internal/integration/persistence/model"
)

// spendLimitRepository implements the adapter.SpendLimitRepository interface.
type spendLimitRepository struct {
	db *gorm.DB
}

// NewSpendLimitRepository creates a new spend limit repository instance.
func NewSpendLimitRepository(db *gorm.DB) adapter.SpendLimitRepository {
	return &spendLimitRepository{
		db: db,
	}
}

// FindByUser retrieves every limit of the user ordered by category.
func (r *spendLimitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySpendLimit, error) {
	var limitModels []model.SpendLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&limitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	limits := make([]*entity.CategorySpendLimit, len(limitModels))
	for i := range limitModels {
		limits[i] = limitModels[i].ToEntity()
	}
	return limits, nil
}

// FindByUserAndCategory returns nil without error when no limit exists.
func (r *spendLimitRepository) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategorySpendLimit, error) {
	var limitModel model.SpendLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&limitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return limitModel.ToEntity(), nil
}

// Upsert inserts the limit or overwrites the amount and time frame of the existing row.
func (r *spendLimitRepository) Upsert(ctx context.Context, limit *entity.CategorySpendLimit) error {
	limitModel := model.SpendLimitFromEntity(limit)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "time_frame", "updated_at"}),
		}).
		Create(limitModel)
	if result.Error != nil {
		return result.Error
	}
	limit.ID = limitModel.ID
	return nil
}
