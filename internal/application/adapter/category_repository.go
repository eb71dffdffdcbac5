package adapter

import (
	"context"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// FindAll retrieves every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByNameAndType checks if a category with the given name exists for the type.
	ExistsByNameAndType(ctx context.Context, name string, categoryType entity.TransactionType) (bool, error)

	// SeedIfEmpty inserts the given categories when the table holds none.
	// Returns the number of rows inserted.
	SeedIfEmpty(ctx context.Context, categories []*entity.Category) (int, error)
}
