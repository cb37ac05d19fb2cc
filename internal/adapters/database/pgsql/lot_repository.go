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

type PgxLotRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLotRepository creates a new repository for lot data.
func NewPgxLotRepository(pool *pgxpool.Pool) repositories.LotRepositoryFacade {
	return &PgxLotRepository{pool: pool}
}

var _ repositories.LotRepositoryFacade = (*PgxLotRepository)(nil)

const lotColumns = `lot_id, owner_id, farm_id, name, crop, area, sowing_date, created_at, created_by, last_updated_at, last_updated_by`

func scanLot(row pgx.Row) (domain.Lot, error) {
	var lot domain.Lot
	err := row.Scan(
		&lot.LotID,
		&lot.OwnerID,
		&lot.FarmID,
		&lot.Name,
		&lot.Crop,
		&lot.Area,
		&lot.SowingDate,
		&lot.CreatedAt,
		&lot.CreatedBy,
		&lot.LastUpdatedAt,
		&lot.LastUpdatedBy,
	)
	return lot, err
}

func (r *PgxLotRepository) SaveLot(ctx context.Context, lot domain.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		lot.LotID,
		lot.OwnerID,
		lot.FarmID,
		lot.Name,
		lot.Crop,
		lot.Area,
		lot.SowingDate,
		lot.CreatedAt,
		lot.CreatedBy,
		lot.LastUpdatedAt,
		lot.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save lot %s: %w", lot.LotID, err)
	}
	return nil
}

func (r *PgxLotRepository) FindLotByID(ctx context.Context, ownerID string, lotID string) (*domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE lot_id = $1 AND owner_id = $2;`
	lot, err := scanLot(r.pool.QueryRow(ctx, query, lotID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lot %s: %w", lotID, err)
	}
	return &lot, nil
}

func (r *PgxLotRepository) ListLots(ctx context.Context, ownerID string) ([]domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE owner_id = $1 ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lots: %w", err)
	}
	defer rows.Close()

	lots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lot, error) {
		return scanLot(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lots: %w", err)
	}
	return lots, nil
}

func (r *PgxLotRepository) UpdateLot(ctx context.Context, lot domain.Lot) error {
	query := `
		UPDATE lots SET
			name = $1,
			crop = $2,
			area = $3,
			sowing_date = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE lot_id = $7 AND owner_id = $8;
	`
	tag, err := r.pool.Exec(ctx, query,
		lot.Name,
		lot.Crop,
		lot.Area,
		lot.SowingDate,
		lot.LastUpdatedAt,
		lot.LastUpdatedBy,
		lot.LotID,
		lot.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lot %s: %w", lot.LotID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "lots", "lot_id", lot.LotID, "update", "lot")
	}
	return nil
}

func (r *PgxLotRepository) DeleteLot(ctx context.Context, ownerID string, lotID string) error {
	query := `DELETE FROM lots WHERE lot_id = $1 AND owner_id = $2;`
	tag, err := r.pool.Exec(ctx, query, lotID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete lot %s: %w", lotID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "lots", "lot_id", lotID, "delete", "lot")
	}
	return nil
}

func (r *PgxLotRepository) CountLots(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM lots WHERE owner_id = $1;`
	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lots: %w", err)
	}
	return count, nil
}
