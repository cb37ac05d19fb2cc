package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// MigrationSource is the read/clear side of the one-shot local-to-hosted
// migration, implemented by the device-local store. Clearing a type is only
// called after that type's batch committed remotely, so a failed batch leaves
// the local records in place for a retry.
type MigrationSource interface {
	Farm(ctx context.Context) (*domain.Farm, error) // nil, nil when absent
	Lots(ctx context.Context) ([]domain.Lot, error)
	StaffMembers(ctx context.Context) ([]domain.Staff, error)
	Supplies(ctx context.Context) ([]domain.Supply, error)
	Tasks(ctx context.Context) ([]domain.Task, error)

	ClearFarm(ctx context.Context) error
	ClearLots(ctx context.Context) error
	ClearStaff(ctx context.Context) error
	ClearSupplies(ctx context.Context) error
	ClearTasks(ctx context.Context) error
}

// MigrationTarget is the write side of the migration, implemented by the
// hosted backend. Each Import method commits its whole slice atomically:
// either every record of the type lands or none does.
type MigrationTarget interface {
	ImportFarm(ctx context.Context, farm domain.Farm) error
	ImportLots(ctx context.Context, lots []domain.Lot) error
	ImportStaff(ctx context.Context, staff []domain.Staff) error
	ImportSupplies(ctx context.Context, supplies []domain.Supply) error
	ImportTasks(ctx context.Context, tasks []domain.Task) error
}
