package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// StaffSvcFacade defines operations on staff members.
type StaffSvcFacade interface {
	CreateStaff(ctx context.Context, ownerID string, req dto.CreateStaffRequest) (*domain.Staff, error)
	GetStaffByID(ctx context.Context, ownerID string, staffID string) (*domain.Staff, error)
	ListStaff(ctx context.Context, ownerID string) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, ownerID string, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, ownerID string, staffID string) error
}
