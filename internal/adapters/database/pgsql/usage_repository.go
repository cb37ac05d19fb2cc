package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplyUsageRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSupplyUsageRepository creates a read-only repository for usage
// records. Inserts and deletes happen in the ledger repository's batches.
func NewPgxSupplyUsageRepository(pool *pgxpool.Pool) repositories.SupplyUsageRepositoryFacade {
	return &PgxSupplyUsageRepository{pool: pool}
}

var _ repositories.SupplyUsageRepositoryFacade = (*PgxSupplyUsageRepository)(nil)

const usageColumns = `usage_id, owner_id, task_id, supply_id, supply_name, quantity, cost_at_time_of_use, created_at, created_by, last_updated_at, last_updated_by`

func scanUsage(row pgx.Row) (domain.SupplyUsage, error) {
	var usage domain.SupplyUsage
	err := row.Scan(
		&usage.UsageID,
		&usage.OwnerID,
		&usage.TaskID,
		&usage.SupplyID,
		&usage.SupplyName,
		&usage.Quantity,
		&usage.CostAtTimeOfUse,
		&usage.CreatedAt,
		&usage.CreatedBy,
		&usage.LastUpdatedAt,
		&usage.LastUpdatedBy,
	)
	return usage, err
}

func (r *PgxSupplyUsageRepository) FindUsageByID(ctx context.Context, ownerID string, usageID string) (*domain.SupplyUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM supply_usages WHERE usage_id = $1 AND owner_id = $2;`
	usage, err := scanUsage(r.pool.QueryRow(ctx, query, usageID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find usage %s: %w", usageID, err)
	}
	return &usage, nil
}

func (r *PgxSupplyUsageRepository) ListUsagesByTask(ctx context.Context, ownerID string, taskID string) ([]domain.SupplyUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM supply_usages WHERE task_id = $1 AND owner_id = $2 ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query, taskID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query usages: %w", err)
	}
	defer rows.Close()

	usages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SupplyUsage, error) {
		return scanUsage(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan usages: %w", err)
	}
	return usages, nil
}
