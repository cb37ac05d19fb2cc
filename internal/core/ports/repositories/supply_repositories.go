package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// SupplyRepositoryFacade defines persistence operations for supplies.
type SupplyRepositoryFacade interface {
	SaveSupply(ctx context.Context, supply domain.Supply) error
	FindSupplyByID(ctx context.Context, ownerID string, supplyID string) (*domain.Supply, error)
	ListSupplies(ctx context.Context, ownerID string) ([]domain.Supply, error)
	UpdateSupply(ctx context.Context, supply domain.Supply) error
	DeleteSupply(ctx context.Context, ownerID string, supplyID string) error
	CountSupplies(ctx context.Context, ownerID string) (int64, error)
}
