package model

import (
	"github.com/spendtrack/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	Name   string  `gorm:"type:varchar(100);primaryKey"`
	Type   string  `gorm:"type:varchar(10);primaryKey"`
	Parent *string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		Name:   m.Name,
		Parent: m.Parent,
		Type:   entity.TransactionType(m.Type),
	}
}

// CategoryFromEntity converts a domain Category entity to a CategoryModel.
func CategoryFromEntity(c *entity.Category) *CategoryModel {
	return &CategoryModel{
		Name:   c.Name,
		Type:   string(c.Type),
		Parent: c.Parent,
	}
}
