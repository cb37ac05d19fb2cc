package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// SupplyUsageRepositoryFacade defines read operations for usage records.
// Writes only happen through the ledger repository's atomic operations.
type SupplyUsageRepositoryFacade interface {
	FindUsageByID(ctx context.Context, ownerID string, usageID string) (*domain.SupplyUsage, error)
	ListUsagesByTask(ctx context.Context, ownerID string, taskID string) ([]domain.SupplyUsage, error)
}
