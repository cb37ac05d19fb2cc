package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// StaffRepositoryFacade defines persistence operations for staff members.
type StaffRepositoryFacade interface {
	SaveStaff(ctx context.Context, staff domain.Staff) error
	FindStaffByID(ctx context.Context, ownerID string, staffID string) (*domain.Staff, error)
	ListStaff(ctx context.Context, ownerID string) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, staff domain.Staff) error
	DeleteStaff(ctx context.Context, ownerID string, staffID string) error
	CountStaff(ctx context.Context, ownerID string) (int64, error)
}
