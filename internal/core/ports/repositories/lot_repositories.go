package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// LotRepositoryFacade defines persistence operations for lots.
type LotRepositoryFacade interface {
	SaveLot(ctx context.Context, lot domain.Lot) error
	FindLotByID(ctx context.Context, ownerID string, lotID string) (*domain.Lot, error)
	ListLots(ctx context.Context, ownerID string) ([]domain.Lot, error)
	UpdateLot(ctx context.Context, lot domain.Lot) error
	DeleteLot(ctx context.Context, ownerID string, lotID string) error
	CountLots(ctx context.Context, ownerID string) (int64, error)
}
