package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// FarmSvcFacade defines operations on the productive-unit singleton.
type FarmSvcFacade interface {
	CreateFarm(ctx context.Context, ownerID string, req dto.CreateFarmRequest) (*domain.Farm, error)
	GetFarm(ctx context.Context, ownerID string) (*domain.Farm, error)
	UpdateFarm(ctx context.Context, ownerID string, req dto.UpdateFarmRequest) (*domain.Farm, error)
}
