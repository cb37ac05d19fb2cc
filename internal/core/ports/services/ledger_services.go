package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// StockLedgerSvcFacade is the only mutator of SupplyUsage records,
// Task.SupplyCost/ActualCost and Supply.CurrentStock (besides restocks).
// Apply and Reverse are exact inverses and each commits atomically.
type StockLedgerSvcFacade interface {
	ApplyUsage(ctx context.Context, ownerID string, taskID string, req dto.ApplyUsageRequest) (*domain.SupplyUsage, error)
	ReverseUsage(ctx context.Context, ownerID string, usageID string) error
	ListUsages(ctx context.Context, ownerID string, taskID string) ([]domain.SupplyUsage, error)
}
