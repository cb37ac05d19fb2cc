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

type PgxFarmRepository struct {
	pool *pgxpool.Pool
}

// NewPgxFarmRepository creates a new repository for farm data.
func NewPgxFarmRepository(pool *pgxpool.Pool) repositories.FarmRepositoryFacade {
	return &PgxFarmRepository{pool: pool}
}

var _ repositories.FarmRepositoryFacade = (*PgxFarmRepository)(nil)

func (r *PgxFarmRepository) SaveFarm(ctx context.Context, farm domain.Farm) error {
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
		return fmt.Errorf("failed to save farm %s: %w", farm.FarmID, err)
	}
	return nil
}

func (r *PgxFarmRepository) FindFarmByOwner(ctx context.Context, ownerID string) (*domain.Farm, error) {
	query := `
		SELECT farm_id, owner_id, name, location, area, created_at, created_by, last_updated_at, last_updated_by
		FROM farms
		WHERE owner_id = $1;
	`
	var farm domain.Farm
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&farm.FarmID,
		&farm.OwnerID,
		&farm.Name,
		&farm.Location,
		&farm.Area,
		&farm.CreatedAt,
		&farm.CreatedBy,
		&farm.LastUpdatedAt,
		&farm.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find farm for owner %s: %w", ownerID, err)
	}
	return &farm, nil
}

func (r *PgxFarmRepository) UpdateFarm(ctx context.Context, farm domain.Farm) error {
	query := `
		UPDATE farms SET
			name = $1,
			location = $2,
			area = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE farm_id = $6 AND owner_id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		farm.Name,
		farm.Location,
		farm.Area,
		farm.LastUpdatedAt,
		farm.LastUpdatedBy,
		farm.FarmID,
		farm.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update farm %s: %w", farm.FarmID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "farms", "farm_id", farm.FarmID, "update", "farm")
	}
	return nil
}
