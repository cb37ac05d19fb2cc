package pgsql

import (
	"context"
	"fmt"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMigrationTarget struct {
	pool *pgxpool.Pool
}

// NewPgxMigrationTarget creates the hosted write side of the local-to-hosted
// migration. Each Import method commits its whole slice in one transaction.
func NewPgxMigrationTarget(pool *pgxpool.Pool) repositories.MigrationTarget {
	return &PgxMigrationTarget{pool: pool}
}

var _ repositories.MigrationTarget = (*PgxMigrationTarget)(nil)

func (r *PgxMigrationTarget) ImportFarm(ctx context.Context, farm domain.Farm) error {
	query := `
		INSERT INTO farms (farm_id, owner_id, name, location, area, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		farm.FarmID,
		farm.OwnerID,
		farm.Name,
		farm.Location,
		farm.Area,
		farm.CreatedAt,
		farm.CreatedBy,
		farm.LastUpdatedAt,
		farm.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to import farm: %w", err)
	}
	return nil
}

func (r *PgxMigrationTarget) ImportLots(ctx context.Context, lots []domain.Lot) error {
	batch := &pgx.Batch{}
	for _, lot := range lots {
		batch.Queue(`
			INSERT INTO lots (`+lotColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`,
			lot.LotID, lot.OwnerID, lot.FarmID, lot.Name, lot.Crop, lot.Area, lot.SowingDate,
			lot.CreatedAt, lot.CreatedBy, lot.LastUpdatedAt, lot.LastUpdatedBy,
		)
	}
	return r.runBatch(ctx, batch, "lots")
}

func (r *PgxMigrationTarget) ImportStaff(ctx context.Context, staff []domain.Staff) error {
	batch := &pgx.Batch{}
	for _, member := range staff {
		batch.Queue(`
			INSERT INTO staff (`+staffColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`,
			member.StaffID, member.OwnerID, member.Name, member.Contact, member.EmploymentType,
			member.DailyRate, member.CreatedAt, member.CreatedBy, member.LastUpdatedAt, member.LastUpdatedBy,
		)
	}
	return r.runBatch(ctx, batch, "staff")
}

func (r *PgxMigrationTarget) ImportSupplies(ctx context.Context, supplies []domain.Supply) error {
	batch := &pgx.Batch{}
	for _, supply := range supplies {
		batch.Queue(`
			INSERT INTO supplies (`+supplyColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`,
			supply.SupplyID, supply.OwnerID, supply.Name, supply.Unit, supply.CostPerUnit,
			supply.CurrentStock, supply.InitialStock,
			supply.CreatedAt, supply.CreatedBy, supply.LastUpdatedAt, supply.LastUpdatedBy,
		)
	}
	return r.runBatch(ctx, batch, "supplies")
}

func (r *PgxMigrationTarget) ImportTasks(ctx context.Context, tasks []domain.Task) error {
	batch := &pgx.Batch{}
	for _, task := range tasks {
		batch.Queue(`
			INSERT INTO tasks (`+taskColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
		`, taskArgs(task)...)
	}
	return r.runBatch(ctx, batch, "tasks")
}

// runBatch commits every queued insert in one transaction, so a single bad
// record rejects the whole type and leaves the hosted side untouched.
func (r *PgxMigrationTarget) runBatch(ctx context.Context, batch *pgx.Batch, collection string) error {
	if batch.Len() == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s import: %w", collection, err)
	}
	defer tx.Rollback(ctx)

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to import %s record %d: %w", collection, i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close %s import batch: %w", collection, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s import: %w", collection, err)
	}
	return nil
}
