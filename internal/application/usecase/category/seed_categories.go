package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
)

// defaultHierarchy lists parent -> children per type.
var defaultHierarchy = map[entity.TransactionType]map[string][]string{
	entity.TransactionTypeExpense: {
		"Housing":        {"Rent", "Utilities", "Maintenance"},
		"Food":           {"Groceries", "Restaurants", "Coffee"},
		"Transportation": {"Fuel", "Public Transit", "Parking"},
		"Health":         {"Medical", "Pharmacy", "Fitness"},
		"Entertainment":  {"Streaming", "Events", "Hobbies"},
		"Shopping":       {"Clothing", "Electronics", "Household"},
		"Travel":         {"Flights", "Lodging"},
		"Other":          {},
	},
	entity.TransactionTypeIncome: {
		"Salary":      {},
		"Freelance":   {},
		"Investments": {"Dividends", "Interest"},
		"Gifts":       {},
	},
}

// DefaultCategories flattens the default hierarchy into category entities.
func DefaultCategories() []*entity.Category {
	var categories []*entity.Category
	for categoryType, parents := range defaultHierarchy {
		for parent, children := range parents {
			categories = append(categories, &entity.Category{Name: parent, Type: categoryType})
			for _, child := range children {
				p := parent
				categories = append(categories, &entity.Category{Name: child, Parent: &p, Type: categoryType})
			}
		}
	}
	return categories
}

// SeedCategoriesUseCase installs the default categories on an empty store.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the store and reports how many categories were inserted.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) (int, error) {
	inserted, err := uc.categoryRepo.SeedIfEmpty(ctx, DefaultCategories())
	if err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}
	if inserted > 0 {
		slog.Info("Seeded default categories", "count", inserted)
	}
	return inserted, nil
}
