package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/google/uuid"
)

// migrationService moves device-local records into the hosted backend when an
// offline user signs in. Types migrate in dependency order so foreign keys
// can be remapped from local to hosted ids as the referenced records land:
// farm, lots, staff, supplies, tasks. Each type commits atomically and its
// local records are cleared only after the commit, so a failure mid-run
// leaves every unmigrated record on the device for a retry.
type migrationService struct {
	source portsrepo.MigrationSource
	target portsrepo.MigrationTarget
}

// NewMigrationService creates a new MigrationService.
func NewMigrationService(source portsrepo.MigrationSource, target portsrepo.MigrationTarget) portssvc.MigrationSvcFacade {
	return &migrationService{source: source, target: target}
}

var _ portssvc.MigrationSvcFacade = (*migrationService)(nil)

// Run migrates every local record to ownerID's hosted account and returns how
// many records landed. Re-running after a partial failure is safe: committed
// types read back empty locally and are skipped.
func (s *migrationService) Run(ctx context.Context, ownerID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	migrated := 0
	idMap := make(map[string]string) // local id -> hosted id

	count, err := s.migrateFarm(ctx, ownerID, idMap)
	migrated += count
	if err != nil {
		return migrated, err
	}

	count, err = s.migrateLots(ctx, ownerID, idMap)
	migrated += count
	if err != nil {
		return migrated, err
	}

	count, err = s.migrateStaff(ctx, ownerID, idMap)
	migrated += count
	if err != nil {
		return migrated, err
	}

	count, err = s.migrateSupplies(ctx, ownerID, idMap)
	migrated += count
	if err != nil {
		return migrated, err
	}

	count, err = s.migrateTasks(ctx, ownerID, idMap)
	migrated += count
	if err != nil {
		return migrated, err
	}

	logger.Info("Migration finished", slog.Int("migrated_records", migrated))
	return migrated, nil
}

func (s *migrationService) migrateFarm(ctx context.Context, ownerID string, idMap map[string]string) (int, error) {
	farm, err := s.source.Farm(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read local farm: %w", err)
	}
	if farm == nil {
		return 0, nil
	}

	idMap[farm.FarmID] = uuid.NewString()
	farm.FarmID = idMap[farm.FarmID]
	s.adopt(&farm.AuditFields, ownerID)
	farm.OwnerID = ownerID

	if err := s.target.ImportFarm(ctx, *farm); err != nil {
		return 0, fmt.Errorf("failed to import farm: %w", err)
	}
	if err := s.source.ClearFarm(ctx); err != nil {
		return 1, fmt.Errorf("failed to clear local farm after import: %w", err)
	}
	return 1, nil
}

func (s *migrationService) migrateLots(ctx context.Context, ownerID string, idMap map[string]string) (int, error) {
	lots, err := s.source.Lots(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read local lots: %w", err)
	}
	if len(lots) == 0 {
		return 0, nil
	}

	for i := range lots {
		lot := &lots[i]
		idMap[lot.LotID] = uuid.NewString()
		lot.LotID = idMap[lot.LotID]
		lot.FarmID = s.remap(ctx, idMap, lot.FarmID, "farmID")
		lot.OwnerID = ownerID
		s.adopt(&lot.AuditFields, ownerID)
	}

	if err := s.target.ImportLots(ctx, lots); err != nil {
		return 0, fmt.Errorf("failed to import lots: %w", err)
	}
	if err := s.source.ClearLots(ctx); err != nil {
		return len(lots), fmt.Errorf("failed to clear local lots after import: %w", err)
	}
	return len(lots), nil
}

func (s *migrationService) migrateStaff(ctx context.Context, ownerID string, idMap map[string]string) (int, error) {
	staff, err := s.source.StaffMembers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read local staff: %w", err)
	}
	if len(staff) == 0 {
		return 0, nil
	}

	for i := range staff {
		member := &staff[i]
		idMap[member.StaffID] = uuid.NewString()
		member.StaffID = idMap[member.StaffID]
		member.OwnerID = ownerID
		s.adopt(&member.AuditFields, ownerID)
	}

	if err := s.target.ImportStaff(ctx, staff); err != nil {
		return 0, fmt.Errorf("failed to import staff: %w", err)
	}
	if err := s.source.ClearStaff(ctx); err != nil {
		return len(staff), fmt.Errorf("failed to clear local staff after import: %w", err)
	}
	return len(staff), nil
}

func (s *migrationService) migrateSupplies(ctx context.Context, ownerID string, idMap map[string]string) (int, error) {
	supplies, err := s.source.Supplies(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read local supplies: %w", err)
	}
	if len(supplies) == 0 {
		return 0, nil
	}

	for i := range supplies {
		supply := &supplies[i]
		idMap[supply.SupplyID] = uuid.NewString()
		supply.SupplyID = idMap[supply.SupplyID]
		supply.OwnerID = ownerID
		s.adopt(&supply.AuditFields, ownerID)
	}

	if err := s.target.ImportSupplies(ctx, supplies); err != nil {
		return 0, fmt.Errorf("failed to import supplies: %w", err)
	}
	if err := s.source.ClearSupplies(ctx); err != nil {
		return len(supplies), fmt.Errorf("failed to clear local supplies after import: %w", err)
	}
	return len(supplies), nil
}

func (s *migrationService) migrateTasks(ctx context.Context, ownerID string, idMap map[string]string) (int, error) {
	tasks, err := s.source.Tasks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read local tasks: %w", err)
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	// Assign every task its hosted id first so DependsOnTaskID references
	// between local tasks resolve regardless of slice order.
	for i := range tasks {
		idMap[tasks[i].TaskID] = uuid.NewString()
	}
	for i := range tasks {
		task := &tasks[i]
		task.TaskID = idMap[task.TaskID]
		task.LotID = s.remap(ctx, idMap, task.LotID, "lotID")
		task.ResponsibleID = s.remap(ctx, idMap, task.ResponsibleID, "responsibleID")
		if task.DependsOnTaskID != nil {
			remapped := s.remap(ctx, idMap, *task.DependsOnTaskID, "dependsOnTaskID")
			task.DependsOnTaskID = &remapped
		}
		task.OwnerID = ownerID
		s.adopt(&task.AuditFields, ownerID)
	}

	if err := s.target.ImportTasks(ctx, tasks); err != nil {
		return 0, fmt.Errorf("failed to import tasks: %w", err)
	}
	if err := s.source.ClearTasks(ctx); err != nil {
		return len(tasks), fmt.Errorf("failed to clear local tasks after import: %w", err)
	}
	return len(tasks), nil
}

// remap swaps a local foreign key for its hosted id. Non-local ids pass
// through untouched; a local id with no mapping is left as-is with a warning
// rather than failing the whole batch.
func (s *migrationService) remap(ctx context.Context, idMap map[string]string, id string, field string) string {
	if !domain.IsLocalID(id) {
		return id
	}
	if mapped, ok := idMap[id]; ok {
		return mapped
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Unmapped local reference left in place",
		slog.String("field", field), slog.String("id", id))
	return id
}

func (s *migrationService) adopt(audit *domain.AuditFields, ownerID string) {
	now := time.Now().UTC()
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = now
	}
	audit.CreatedBy = ownerID
	audit.LastUpdatedAt = now
	audit.LastUpdatedBy = ownerID
}
