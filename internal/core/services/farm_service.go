package services

import (
	"context"
	"errors"
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

// farmService manages the productive-unit singleton.
type farmService struct {
	farmRepo portsrepo.FarmRepositoryFacade
	newID    portsrepo.IDGenerator
}

// NewFarmService creates a new FarmService.
func NewFarmService(farmRepo portsrepo.FarmRepositoryFacade, newID portsrepo.IDGenerator) portssvc.FarmSvcFacade {
	return &farmService{farmRepo: farmRepo, newID: newID}
}

var _ portssvc.FarmSvcFacade = (*farmService)(nil)

func (s *farmService) CreateFarm(ctx context.Context, ownerID string, req dto.CreateFarmRequest) (*domain.Farm, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.farmRepo.FindFarmByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing farm: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: owner already has a farm", apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	farm := domain.Farm{
		FarmID:   s.newID(),
		OwnerID:  ownerID,
		Name:     req.Name,
		Location: req.Location,
		Area:     req.Area,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.farmRepo.SaveFarm(ctx, farm); err != nil {
		logger.Error("Failed to save farm", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save farm: %w", err)
	}

	logger.Info("Farm created", slog.String("farm_id", farm.FarmID))
	return &farm, nil
}

func (s *farmService) GetFarm(ctx context.Context, ownerID string) (*domain.Farm, error) {
	farm, err := s.farmRepo.FindFarmByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find farm: %w", err)
	}
	return farm, nil
}

func (s *farmService) UpdateFarm(ctx context.Context, ownerID string, req dto.UpdateFarmRequest) (*domain.Farm, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	farm, err := s.farmRepo.FindFarmByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find farm for update: %w", err)
	}

	if req.Name != nil {
		farm.Name = *req.Name
	}
	if req.Location != nil {
		farm.Location = *req.Location
	}
	if req.Area != nil {
		farm.Area = *req.Area
	}
	farm.LastUpdatedAt = time.Now().UTC()
	farm.LastUpdatedBy = ownerID

	if err := s.farmRepo.UpdateFarm(ctx, *farm); err != nil {
		logger.Error("Failed to update farm", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}
	return farm, nil
}
