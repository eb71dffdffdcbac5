package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	"github.com/spendtrack/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindAll retrieves every category ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC, type ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// ExistsByNameAndType checks if a category with the given name exists for the type.
func (r *categoryRepository) ExistsByNameAndType(ctx context.Context, name string, categoryType entity.TransactionType) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ? AND type = ?", name, string(categoryType)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SeedIfEmpty inserts the categories inside one transaction when the table is empty.
func (r *categoryRepository) SeedIfEmpty(ctx context.Context, categories []*entity.Category) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(categories) == 0 {
			return nil
		}

		categoryModels := make([]*model.CategoryModel, len(categories))
		for i, c := range categories {
			categoryModels[i] = model.CategoryFromEntity(c)
		}
		if err := tx.Create(categoryModels).Error; err != nil {
			return err
		}
		inserted = len(categoryModels)
		return nil
	})
	return inserted, err
}
