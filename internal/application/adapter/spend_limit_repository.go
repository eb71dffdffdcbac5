package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// SpendLimitRepository defines the interface for spend limit persistence operations.
type SpendLimitRepository interface {
	// FindByUser retrieves every limit of the user ordered by category.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySpendLimit, error)

	// FindByUserAndCategory retrieves one limit, or nil when none is configured.
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategorySpendLimit, error)

	// Upsert creates the limit or replaces the existing one for (user, category).
	Upsert(ctx context.Context, limit *entity.CategorySpendLimit) error
}
