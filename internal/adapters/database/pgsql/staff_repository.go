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

type PgxStaffRepository struct {
	pool *pgxpool.Pool
}

// NewPgxStaffRepository creates a new repository for staff data.
func NewPgxStaffRepository(pool *pgxpool.Pool) repositories.StaffRepositoryFacade {
	return &PgxStaffRepository{pool: pool}
}

var _ repositories.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, owner_id, name, contact, employment_type, daily_rate, created_at, created_by, last_updated_at, last_updated_by`

func scanStaff(row pgx.Row) (domain.Staff, error) {
	var staff domain.Staff
	err := row.Scan(
		&staff.StaffID,
		&staff.OwnerID,
		&staff.Name,
		&staff.Contact,
		&staff.EmploymentType,
		&staff.DailyRate,
		&staff.CreatedAt,
		&staff.CreatedBy,
		&staff.LastUpdatedAt,
		&staff.LastUpdatedBy,
	)
	return staff, err
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		staff.StaffID,
		staff.OwnerID,
		staff.Name,
		staff.Contact,
		staff.EmploymentType,
		staff.DailyRate,
		staff.CreatedAt,
		staff.CreatedBy,
		staff.LastUpdatedAt,
		staff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff member %s: %w", staff.StaffID, err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, ownerID string, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1 AND owner_id = $2;`
	staff, err := scanStaff(r.pool.QueryRow(ctx, query, staffID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff member %s: %w", staffID, err)
	}
	return &staff, nil
}

func (r *PgxStaffRepository) ListStaff(ctx context.Context, ownerID string) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE owner_id = $1 ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	staff, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Staff, error) {
		return scanStaff(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan staff: %w", err)
	}
	return staff, nil
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	query := `
		UPDATE staff SET
			name = $1,
			contact = $2,
			employment_type = $3,
			daily_rate = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE staff_id = $7 AND owner_id = $8;
	`
	tag, err := r.pool.Exec(ctx, query,
		staff.Name,
		staff.Contact,
		staff.EmploymentType,
		staff.DailyRate,
		staff.LastUpdatedAt,
		staff.LastUpdatedBy,
		staff.StaffID,
		staff.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff member %s: %w", staff.StaffID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "staff", "staff_id", staff.StaffID, "update", "staff")
	}
	return nil
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, ownerID string, staffID string) error {
	query := `DELETE FROM staff WHERE staff_id = $1 AND owner_id = $2;`
	tag, err := r.pool.Exec(ctx, query, staffID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", staffID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "staff", "staff_id", staffID, "delete", "staff")
	}
	return nil
}

func (r *PgxStaffRepository) CountStaff(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM staff WHERE owner_id = $1;`
	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}
