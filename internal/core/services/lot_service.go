package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
)

// lotService manages lots inside the owner's farm.
type lotService struct {
	lotRepo  portsrepo.LotRepositoryFacade
	farmRepo portsrepo.FarmRepositoryFacade
	quota    portssvc.QuotaGuard
	newID    portsrepo.IDGenerator
}

// NewLotService creates a new LotService.
func NewLotService(lotRepo portsrepo.LotRepositoryFacade, farmRepo portsrepo.FarmRepositoryFacade, quota portssvc.QuotaGuard, newID portsrepo.IDGenerator) portssvc.LotSvcFacade {
	return &lotService{lotRepo: lotRepo, farmRepo: farmRepo, quota: quota, newID: newID}
}

var _ portssvc.LotSvcFacade = (*lotService)(nil)

func (s *lotService) CreateLot(ctx context.Context, ownerID string, req dto.CreateLotRequest) (*domain.Lot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	farm, err := s.farmRepo.FindFarmByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find farm for new lot: %w", err)
	}

	count, err := s.lotRepo.CountLots(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count lots: %w", err)
	}
	if err := s.quota.Check(ctx, ownerID, portssvc.FeatureLots, count); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lot := domain.Lot{
		LotID:      s.newID(),
		OwnerID:    ownerID,
		FarmID:     farm.FarmID,
		Name:       req.Name,
		Crop:       req.Crop,
		Area:       req.Area,
		SowingDate: req.SowingDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.lotRepo.SaveLot(ctx, lot); err != nil {
		logger.Error("Failed to save lot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save lot: %w", err)
	}

	logger.Info("Lot created", slog.String("lot_id", lot.LotID))
	return &lot, nil
}

func (s *lotService) GetLotByID(ctx context.Context, ownerID string, lotID string) (*domain.Lot, error) {
	lot, err := s.lotRepo.FindLotByID(ctx, ownerID, lotID)
	if err != nil {
		return nil, fmt.Errorf("failed to find lot %s: %w", lotID, err)
	}
	return lot, nil
}

func (s *lotService) ListLots(ctx context.Context, ownerID string) ([]domain.Lot, error) {
	lots, err := s.lotRepo.ListLots(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lots: %w", err)
	}
	return lots, nil
}

func (s *lotService) UpdateLot(ctx context.Context, ownerID string, lotID string, req dto.UpdateLotRequest) (*domain.Lot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lot, err := s.lotRepo.FindLotByID(ctx, ownerID, lotID)
	if err != nil {
		return nil, fmt.Errorf("failed to find lot for update: %w", err)
	}

	if req.Name != nil {
		lot.Name = *req.Name
	}
	if req.Crop != nil {
		lot.Crop = *req.Crop
	}
	if req.Area != nil {
		lot.Area = *req.Area
	}
	if req.SowingDate != nil {
		lot.SowingDate = req.SowingDate
	}
	lot.LastUpdatedAt = time.Now().UTC()
	lot.LastUpdatedBy = ownerID

	if err := s.lotRepo.UpdateLot(ctx, *lot); err != nil {
		logger.Error("Failed to update lot", slog.String("error", err.Error()), slog.String("lot_id", lotID))
		return nil, fmt.Errorf("failed to update lot: %w", err)
	}
	return lot, nil
}

func (s *lotService) DeleteLot(ctx context.Context, ownerID string, lotID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.lotRepo.DeleteLot(ctx, ownerID, lotID); err != nil {
		logger.Error("Failed to delete lot", slog.String("error", err.Error()), slog.String("lot_id", lotID))
		return fmt.Errorf("failed to delete lot: %w", err)
	}
	logger.Info("Lot deleted", slog.String("lot_id", lotID))
	return nil
}
