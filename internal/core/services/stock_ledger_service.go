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
	"github.com/shopspring/decimal"
)

// stockLedgerService is the single mutator of supply stock levels and task
// supply costs. Each apply/reverse computes the three post-state documents
// (usage record, task, supply) and hands them to the ledger repository for an
// all-or-nothing commit, so a crash can never leave stock decremented without
// the matching usage record.
type stockLedgerService struct {
	taskRepo   portsrepo.TaskRepositoryFacade
	supplyRepo portsrepo.SupplyRepositoryFacade
	usageRepo  portsrepo.SupplyUsageRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	newID      portsrepo.IDGenerator
}

// NewStockLedgerService creates a new StockLedgerService. ledgerRepo is nil
// on backends without a batch primitive; apply and reverse then refuse with
// ErrUnsupported.
func NewStockLedgerService(
	taskRepo portsrepo.TaskRepositoryFacade,
	supplyRepo portsrepo.SupplyRepositoryFacade,
	usageRepo portsrepo.SupplyUsageRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	newID portsrepo.IDGenerator,
) portssvc.StockLedgerSvcFacade {
	return &stockLedgerService{
		taskRepo:   taskRepo,
		supplyRepo: supplyRepo,
		usageRepo:  usageRepo,
		ledgerRepo: ledgerRepo,
		newID:      newID,
	}
}

var _ portssvc.StockLedgerSvcFacade = (*stockLedgerService)(nil)

func (s *stockLedgerService) ApplyUsage(ctx context.Context, ownerID string, taskID string, req dto.ApplyUsageRequest) (*domain.SupplyUsage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.ledgerRepo == nil {
		return nil, fmt.Errorf("%w: the stock ledger requires the hosted backend", apperrors.ErrUnsupported)
	}
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: usage quantity must be positive", apperrors.ErrValidation)
	}

	task, err := s.taskRepo.FindTaskByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task for usage: %w", err)
	}
	supply, err := s.supplyRepo.FindSupplyByID(ctx, ownerID, req.SupplyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supply for usage: %w", err)
	}

	if req.Quantity.GreaterThan(supply.CurrentStock) {
		return nil, fmt.Errorf("%w: requested %s %s of %q but only %s in stock",
			apperrors.ErrInsufficientStock,
			req.Quantity.String(), supply.Unit, supply.Name, supply.CurrentStock.String())
	}

	cost := supply.CostPerUnit.Mul(req.Quantity)
	now := time.Now().UTC()
	recordedAt := now
	if req.Date != nil {
		recordedAt = *req.Date
	}

	usage := domain.SupplyUsage{
		UsageID:         s.newID(),
		OwnerID:         ownerID,
		TaskID:          task.TaskID,
		SupplyID:        supply.SupplyID,
		SupplyName:      supply.Name,
		Quantity:        req.Quantity,
		CostAtTimeOfUse: cost,
		AuditFields: domain.AuditFields{
			CreatedAt:     recordedAt,
			CreatedBy:     ownerID,
			LastUpdatedAt: recordedAt,
			LastUpdatedBy: ownerID,
		},
	}

	task.SupplyCost = task.SupplyCost.Add(cost)
	task.ActualCost = task.ActualCost.Add(cost)
	task.LastUpdatedAt = now
	task.LastUpdatedBy = ownerID

	supply.CurrentStock = supply.CurrentStock.Sub(req.Quantity)
	supply.LastUpdatedAt = now
	supply.LastUpdatedBy = ownerID

	if err := s.ledgerRepo.ApplyUsage(ctx, usage, *task, *supply); err != nil {
		logger.Error("Failed to commit usage", slog.String("error", err.Error()), slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to commit usage: %w", err)
	}

	logger.Info("Supply usage applied",
		slog.String("usage_id", usage.UsageID),
		slog.String("task_id", task.TaskID),
		slog.String("supply_id", supply.SupplyID),
		slog.String("cost", cost.String()))
	return &usage, nil
}

// ReverseUsage is the exact inverse of ApplyUsage: the quantity returns to
// stock and the snapshotted cost comes off the task, regardless of the
// supply's current price.
func (s *stockLedgerService) ReverseUsage(ctx context.Context, ownerID string, usageID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.ledgerRepo == nil {
		return fmt.Errorf("%w: the stock ledger requires the hosted backend", apperrors.ErrUnsupported)
	}

	usage, err := s.usageRepo.FindUsageByID(ctx, ownerID, usageID)
	if err != nil {
		return fmt.Errorf("failed to find usage for reversal: %w", err)
	}
	task, err := s.taskRepo.FindTaskByID(ctx, ownerID, usage.TaskID)
	if err != nil {
		return fmt.Errorf("failed to find task for reversal: %w", err)
	}
	supply, err := s.supplyRepo.FindSupplyByID(ctx, ownerID, usage.SupplyID)
	if err != nil {
		return fmt.Errorf("failed to find supply for reversal: %w", err)
	}

	now := time.Now().UTC()
	task.SupplyCost = clampAtZero(task.SupplyCost.Sub(usage.CostAtTimeOfUse))
	task.ActualCost = clampAtZero(task.ActualCost.Sub(usage.CostAtTimeOfUse))
	task.LastUpdatedAt = now
	task.LastUpdatedBy = ownerID

	supply.CurrentStock = supply.CurrentStock.Add(usage.Quantity)
	supply.LastUpdatedAt = now
	supply.LastUpdatedBy = ownerID

	if err := s.ledgerRepo.ReverseUsage(ctx, usageID, *task, *supply); err != nil {
		logger.Error("Failed to commit usage reversal", slog.String("error", err.Error()), slog.String("usage_id", usageID))
		return fmt.Errorf("failed to commit usage reversal: %w", err)
	}

	logger.Info("Supply usage reversed",
		slog.String("usage_id", usageID),
		slog.String("task_id", task.TaskID),
		slog.String("supply_id", supply.SupplyID))
	return nil
}

func (s *stockLedgerService) ListUsages(ctx context.Context, ownerID string, taskID string) ([]domain.SupplyUsage, error) {
	usages, err := s.usageRepo.ListUsagesByTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list usages: %w", err)
	}
	return usages, nil
}

func clampAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
