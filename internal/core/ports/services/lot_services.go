package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// LotSvcFacade defines operations on lots.
type LotSvcFacade interface {
	CreateLot(ctx context.Context, ownerID string, req dto.CreateLotRequest) (*domain.Lot, error)
	GetLotByID(ctx context.Context, ownerID string, lotID string) (*domain.Lot, error)
	ListLots(ctx context.Context, ownerID string) ([]domain.Lot, error)
	UpdateLot(ctx context.Context, ownerID string, lotID string, req dto.UpdateLotRequest) (*domain.Lot, error)
	DeleteLot(ctx context.Context, ownerID string, lotID string) error
}
