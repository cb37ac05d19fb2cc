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

// staffService manages staff members.
type staffService struct {
	staffRepo portsrepo.StaffRepositoryFacade
	quota     portssvc.QuotaGuard
	newID     portsrepo.IDGenerator
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade, quota portssvc.QuotaGuard, newID portsrepo.IDGenerator) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo, quota: quota, newID: newID}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaff(ctx context.Context, ownerID string, req dto.CreateStaffRequest) (*domain.Staff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.staffRepo.CountStaff(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}
	if err := s.quota.Check(ctx, ownerID, portssvc.FeatureStaff, count); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	staff := domain.Staff{
		StaffID:        s.newID(),
		OwnerID:        ownerID,
		Name:           req.Name,
		Contact:        req.Contact,
		EmploymentType: req.EmploymentType,
		DailyRate:      req.DailyRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		logger.Error("Failed to save staff member", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save staff member: %w", err)
	}

	logger.Info("Staff member created", slog.String("staff_id", staff.StaffID))
	return &staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, ownerID string, staffID string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff member %s: %w", staffID, err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context, ownerID string) ([]domain.Staff, error) {
	staff, err := s.staffRepo.ListStaff(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, ownerID string, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	staff, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff member for update: %w", err)
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Contact != nil {
		staff.Contact = *req.Contact
	}
	if req.EmploymentType != nil {
		staff.EmploymentType = *req.EmploymentType
	}
	if req.DailyRate != nil {
		staff.DailyRate = *req.DailyRate
	}
	staff.LastUpdatedAt = time.Now().UTC()
	staff.LastUpdatedBy = ownerID

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		logger.Error("Failed to update staff member", slog.String("error", err.Error()), slog.String("staff_id", staffID))
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return staff, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, ownerID string, staffID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.staffRepo.DeleteStaff(ctx, ownerID, staffID); err != nil {
		logger.Error("Failed to delete staff member", slog.String("error", err.Error()), slog.String("staff_id", staffID))
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	logger.Info("Staff member deleted", slog.String("staff_id", staffID))
	return nil
}
