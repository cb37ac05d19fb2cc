package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// FarmRepositoryFacade defines persistence operations for the productive-unit
// singleton. There is at most one farm per owner.
type FarmRepositoryFacade interface {
	SaveFarm(ctx context.Context, farm domain.Farm) error
	FindFarmByOwner(ctx context.Context, ownerID string) (*domain.Farm, error)
	UpdateFarm(ctx context.Context, farm domain.Farm) error
}
