package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// SupplySvcFacade defines operations on supplies. Stock decrements only
// happen through the stock ledger; Restock is the single increment path
// outside usage reversal.
type SupplySvcFacade interface {
	CreateSupply(ctx context.Context, ownerID string, req dto.CreateSupplyRequest) (*domain.Supply, error)
	GetSupplyByID(ctx context.Context, ownerID string, supplyID string) (*domain.Supply, error)
	ListSupplies(ctx context.Context, ownerID string) ([]domain.Supply, error)
	UpdateSupply(ctx context.Context, ownerID string, supplyID string, req dto.UpdateSupplyRequest) (*domain.Supply, error)
	RestockSupply(ctx context.Context, ownerID string, supplyID string, req dto.RestockSupplyRequest) (*domain.Supply, error)
	DeleteSupply(ctx context.Context, ownerID string, supplyID string) error
}
