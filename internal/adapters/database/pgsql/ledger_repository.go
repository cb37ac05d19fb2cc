package pgsql

import (
	"context"
	"fmt"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates the repository backing the stock ledger's
// atomic multi-row writes.
func NewPgxLedgerRepository(pool *pgxpool.Pool) repositories.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

var _ repositories.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const updateTaskCostsQuery = `
	UPDATE tasks SET
		supply_cost = $1,
		actual_cost = $2,
		last_updated_at = $3,
		last_updated_by = $4
	WHERE task_id = $5 AND owner_id = $6;
`

const updateSupplyStockQuery = `
	UPDATE supplies SET
		current_stock = $1,
		last_updated_at = $2,
		last_updated_by = $3
	WHERE supply_id = $4 AND owner_id = $5;
`

// ApplyUsage inserts the usage record and writes the post-state task and
// supply rows in one transaction.
func (r *PgxLedgerRepository) ApplyUsage(ctx context.Context, usage domain.SupplyUsage, task domain.Task, supply domain.Supply) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for usage apply: %w", err)
	}
	defer tx.Rollback(ctx) // Safe to call even after commit

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO supply_usages (usage_id, owner_id, task_id, supply_id, supply_name, quantity, cost_at_time_of_use, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		usage.UsageID,
		usage.OwnerID,
		usage.TaskID,
		usage.SupplyID,
		usage.SupplyName,
		usage.Quantity,
		usage.CostAtTimeOfUse,
		usage.CreatedAt,
		usage.CreatedBy,
		usage.LastUpdatedAt,
		usage.LastUpdatedBy,
	)
	batch.Queue(updateTaskCostsQuery,
		task.SupplyCost, task.ActualCost, task.LastUpdatedAt, task.LastUpdatedBy, task.TaskID, task.OwnerID)
	batch.Queue(updateSupplyStockQuery,
		supply.CurrentStock, supply.LastUpdatedAt, supply.LastUpdatedBy, supply.SupplyID, supply.OwnerID)

	if err := r.sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("failed to apply usage %s: %w", usage.UsageID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit usage apply: %w", err)
	}
	return nil
}

// ReverseUsage deletes the usage record and writes the restored task and
// supply rows in one transaction.
func (r *PgxLedgerRepository) ReverseUsage(ctx context.Context, usageID string, task domain.Task, supply domain.Supply) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for usage reversal: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM supply_usages WHERE usage_id = $1 AND owner_id = $2;`, usageID, task.OwnerID)
	batch.Queue(updateTaskCostsQuery,
		task.SupplyCost, task.ActualCost, task.LastUpdatedAt, task.LastUpdatedBy, task.TaskID, task.OwnerID)
	batch.Queue(updateSupplyStockQuery,
		supply.CurrentStock, supply.LastUpdatedAt, supply.LastUpdatedBy, supply.SupplyID, supply.OwnerID)

	if err := r.sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("failed to reverse usage %s: %w", usageID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit usage reversal: %w", err)
	}
	return nil
}

// DeleteTaskCascade removes the task's usage records, restores the affected
// supplies' stock and deletes the task, all in one transaction.
func (r *PgxLedgerRepository) DeleteTaskCascade(ctx context.Context, task domain.Task, usageIDs []string, supplies []domain.Supply) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for task cascade: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, usageID := range usageIDs {
		batch.Queue(`DELETE FROM supply_usages WHERE usage_id = $1 AND owner_id = $2;`, usageID, task.OwnerID)
	}
	for _, supply := range supplies {
		batch.Queue(updateSupplyStockQuery,
			supply.CurrentStock, supply.LastUpdatedAt, supply.LastUpdatedBy, supply.SupplyID, supply.OwnerID)
	}
	batch.Queue(`DELETE FROM tasks WHERE task_id = $1 AND owner_id = $2;`, task.TaskID, task.OwnerID)

	if err := r.sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("failed to cascade delete task %s: %w", task.TaskID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit task cascade: %w", err)
	}
	return nil
}

// sendBatch executes every queued statement and surfaces the first failure.
func (r *PgxLedgerRepository) sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch statement %d failed: %w", i, err)
		}
	}
	return nil
}
