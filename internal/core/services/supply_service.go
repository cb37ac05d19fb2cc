package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
)

// supplyService manages supply records. All stock decrements go through the
// stock ledger service; this service only creates, restocks and edits the
// descriptive fields.
type supplyService struct {
	supplyRepo portsrepo.SupplyRepositoryFacade
	quota      portssvc.QuotaGuard
	newID      portsrepo.IDGenerator
}

// NewSupplyService creates a new SupplyService.
func NewSupplyService(supplyRepo portsrepo.SupplyRepositoryFacade, quota portssvc.QuotaGuard, newID portsrepo.IDGenerator) portssvc.SupplySvcFacade {
	return &supplyService{supplyRepo: supplyRepo, quota: quota, newID: newID}
}

var _ portssvc.SupplySvcFacade = (*supplyService)(nil)

func (s *supplyService) CreateSupply(ctx context.Context, ownerID string, req dto.CreateSupplyRequest) (*domain.Supply, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialStock.IsNegative() || req.CostPerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: stock and cost must not be negative", apperrors.ErrValidation)
	}

	count, err := s.supplyRepo.CountSupplies(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count supplies: %w", err)
	}
	if err := s.quota.Check(ctx, ownerID, portssvc.FeatureSupplies, count); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	supply := domain.Supply{
		SupplyID:     s.newID(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		CurrentStock: req.InitialStock,
		InitialStock: req.InitialStock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.supplyRepo.SaveSupply(ctx, supply); err != nil {
		logger.Error("Failed to save supply", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supply: %w", err)
	}

	logger.Info("Supply created", slog.String("supply_id", supply.SupplyID))
	return &supply, nil
}

func (s *supplyService) GetSupplyByID(ctx context.Context, ownerID string, supplyID string) (*domain.Supply, error) {
	supply, err := s.supplyRepo.FindSupplyByID(ctx, ownerID, supplyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supply %s: %w", supplyID, err)
	}
	return supply, nil
}

func (s *supplyService) ListSupplies(ctx context.Context, ownerID string) ([]domain.Supply, error) {
	supplies, err := s.supplyRepo.ListSupplies(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}
	return supplies, nil
}

func (s *supplyService) UpdateSupply(ctx context.Context, ownerID string, supplyID string, req dto.UpdateSupplyRequest) (*domain.Supply, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supply, err := s.supplyRepo.FindSupplyByID(ctx, ownerID, supplyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supply for update: %w", err)
	}

	if req.Name != nil {
		supply.Name = *req.Name
	}
	if req.Unit != nil {
		supply.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		if req.CostPerUnit.IsNegative() {
			return nil, fmt.Errorf("%w: cost per unit must not be negative", apperrors.ErrValidation)
		}
		supply.CostPerUnit = *req.CostPerUnit
	}
	supply.LastUpdatedAt = time.Now().UTC()
	supply.LastUpdatedBy = ownerID

	if err := s.supplyRepo.UpdateSupply(ctx, *supply); err != nil {
		logger.Error("Failed to update supply", slog.String("error", err.Error()), slog.String("supply_id", supplyID))
		return nil, fmt.Errorf("failed to update supply: %w", err)
	}
	return supply, nil
}

func (s *supplyService) RestockSupply(ctx context.Context, ownerID string, supplyID string, req dto.RestockSupplyRequest) (*domain.Supply, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: restock quantity must be positive", apperrors.ErrValidation)
	}

	supply, err := s.supplyRepo.FindSupplyByID(ctx, ownerID, supplyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supply for restock: %w", err)
	}

	supply.CurrentStock = supply.CurrentStock.Add(req.Quantity)
	supply.LastUpdatedAt = time.Now().UTC()
	supply.LastUpdatedBy = ownerID

	if err := s.supplyRepo.UpdateSupply(ctx, *supply); err != nil {
		logger.Error("Failed to restock supply", slog.String("error", err.Error()), slog.String("supply_id", supplyID))
		return nil, fmt.Errorf("failed to restock supply: %w", err)
	}

	logger.Info("Supply restocked",
		slog.String("supply_id", supplyID),
		slog.String("quantity", req.Quantity.String()))
	return supply, nil
}

func (s *supplyService) DeleteSupply(ctx context.Context, ownerID string, supplyID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.supplyRepo.DeleteSupply(ctx, ownerID, supplyID); err != nil {
		logger.Error("Failed to delete supply", slog.String("error", err.Error()), slog.String("supply_id", supplyID))
		return fmt.Errorf("failed to delete supply: %w", err)
	}
	logger.Info("Supply deleted", slog.String("supply_id", supplyID))
	return nil
}
