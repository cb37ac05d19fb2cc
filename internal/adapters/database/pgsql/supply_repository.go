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

type PgxSupplyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSupplyRepository creates a new repository for supply data.
func NewPgxSupplyRepository(pool *pgxpool.Pool) repositories.SupplyRepositoryFacade {
	return &PgxSupplyRepository{pool: pool}
}

var _ repositories.SupplyRepositoryFacade = (*PgxSupplyRepository)(nil)

const supplyColumns = `supply_id, owner_id, name, unit, cost_per_unit, current_stock, initial_stock, created_at, created_by, last_updated_at, last_updated_by`

func scanSupply(row pgx.Row) (domain.Supply, error) {
	var supply domain.Supply
	err := row.Scan(
		&supply.SupplyID,
		&supply.OwnerID,
		&supply.Name,
		&supply.Unit,
		&supply.CostPerUnit,
		&supply.CurrentStock,
		&supply.InitialStock,
		&supply.CreatedAt,
		&supply.CreatedBy,
		&supply.LastUpdatedAt,
		&supply.LastUpdatedBy,
	)
	return supply, err
}

func (r *PgxSupplyRepository) SaveSupply(ctx context.Context, supply domain.Supply) error {
	query := `
		INSERT INTO supplies (` + supplyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		supply.SupplyID,
		supply.OwnerID,
		supply.Name,
		supply.Unit,
		supply.CostPerUnit,
		supply.CurrentStock,
		supply.InitialStock,
		supply.CreatedAt,
		supply.CreatedBy,
		supply.LastUpdatedAt,
		supply.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supply %s: %w", supply.SupplyID, err)
	}
	return nil
}

func (r *PgxSupplyRepository) FindSupplyByID(ctx context.Context, ownerID string, supplyID string) (*domain.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE supply_id = $1 AND owner_id = $2;`
	supply, err := scanSupply(r.pool.QueryRow(ctx, query, supplyID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supply %s: %w", supplyID, err)
	}
	return &supply, nil
}

func (r *PgxSupplyRepository) ListSupplies(ctx context.Context, ownerID string) ([]domain.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE owner_id = $1 ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplies: %w", err)
	}
	defer rows.Close()

	supplies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Supply, error) {
		return scanSupply(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan supplies: %w", err)
	}
	return supplies, nil
}

func (r *PgxSupplyRepository) UpdateSupply(ctx context.Context, supply domain.Supply) error {
	query := `
		UPDATE supplies SET
			name = $1,
			unit = $2,
			cost_per_unit = $3,
			current_stock = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE supply_id = $7 AND owner_id = $8;
	`
	tag, err := r.pool.Exec(ctx, query,
		supply.Name,
		supply.Unit,
		supply.CostPerUnit,
		supply.CurrentStock,
		supply.LastUpdatedAt,
		supply.LastUpdatedBy,
		supply.SupplyID,
		supply.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update supply %s: %w", supply.SupplyID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "supplies", "supply_id", supply.SupplyID, "update", "supply")
	}
	return nil
}

func (r *PgxSupplyRepository) DeleteSupply(ctx context.Context, ownerID string, supplyID string) error {
	query := `DELETE FROM supplies WHERE supply_id = $1 AND owner_id = $2;`
	tag, err := r.pool.Exec(ctx, query, supplyID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete supply %s: %w", supplyID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "supplies", "supply_id", supplyID, "delete", "supply")
	}
	return nil
}

func (r *PgxSupplyRepository) CountSupplies(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM supplies WHERE owner_id = $1;`
	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count supplies: %w", err)
	}
	return count, nil
}
