// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	// Type optionally restricts the flat list to "Income" or "Expense".
	Type string
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	Name   string
	Parent *string
	Type   entity.TransactionType
}

// ListCategoriesOutput represents the category list with its hierarchy.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
	Tree       entity.CategoryTree
	ParentOf   map[string]string
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing. The hierarchy always covers every
// category so that roll-ups stay consistent regardless of the type filter.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	filter := entity.TransactionType(input.Type)
	if filter != "" && !filter.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			domainerror.ErrInvalidCategoryType.Error(),
			domainerror.ErrInvalidCategoryType,
		)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	hierarchy := entity.BuildCategoryHierarchy(categories)
	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(categories)),
		Tree:       hierarchy.Tree,
		ParentOf:   hierarchy.ParentOf,
	}

	for _, c := range categories {
		if filter != "" && c.Type != filter {
			continue
		}
		output.Categories = append(output.Categories, &CategoryOutput{
			Name:   c.Name,
			Parent: c.Parent,
			Type:   c.Type,
		})
	}

	return output, nil
}
