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

type PgxTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTaskRepository creates a new repository for task data.
func NewPgxTaskRepository(pool *pgxpool.Pool) repositories.TaskRepositoryFacade {
	return &PgxTaskRepository{pool: pool}
}

var _ repositories.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskColumns = `task_id, owner_id, lot_id, category, type, responsible_id, start_date, end_date, status, progress, planned_man_days, planned_cost, supply_cost, actual_cost, depends_on_task_id, observations, recurrence, created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.TaskID,
		&task.OwnerID,
		&task.LotID,
		&task.Category,
		&task.Type,
		&task.ResponsibleID,
		&task.StartDate,
		&task.EndDate,
		&task.Status,
		&task.Progress,
		&task.PlannedManDays,
		&task.PlannedCost,
		&task.SupplyCost,
		&task.ActualCost,
		&task.DependsOnTaskID,
		&task.Observations,
		&task.Recurrence, // jsonb
		&task.CreatedAt,
		&task.CreatedBy,
		&task.LastUpdatedAt,
		&task.LastUpdatedBy,
	)
	return task, err
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.pool.Exec(ctx, query, taskArgs(task)...)
	if err != nil {
		return fmt.Errorf("failed to save task %s: %w", task.TaskID, err)
	}
	return nil
}

func taskArgs(task domain.Task) []any {
	return []any{
		task.TaskID,
		task.OwnerID,
		task.LotID,
		task.Category,
		task.Type,
		task.ResponsibleID,
		task.StartDate,
		task.EndDate,
		task.Status,
		task.Progress,
		task.PlannedManDays,
		task.PlannedCost,
		task.SupplyCost,
		task.ActualCost,
		task.DependsOnTaskID,
		task.Observations,
		task.Recurrence,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	}
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, ownerID string, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1 AND owner_id = $2;`
	task, err := scanTask(r.pool.QueryRow(ctx, query, taskID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY start_date;`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tasks: %w", err)
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks SET
			lot_id = $1,
			category = $2,
			type = $3,
			responsible_id = $4,
			start_date = $5,
			end_date = $6,
			status = $7,
			progress = $8,
			planned_man_days = $9,
			planned_cost = $10,
			supply_cost = $11,
			actual_cost = $12,
			depends_on_task_id = $13,
			observations = $14,
			recurrence = $15,
			last_updated_at = $16,
			last_updated_by = $17
		WHERE task_id = $18 AND owner_id = $19;
	`
	tag, err := r.pool.Exec(ctx, query,
		task.LotID,
		task.Category,
		task.Type,
		task.ResponsibleID,
		task.StartDate,
		task.EndDate,
		task.Status,
		task.Progress,
		task.PlannedManDays,
		task.PlannedCost,
		task.SupplyCost,
		task.ActualCost,
		task.DependsOnTaskID,
		task.Observations,
		task.Recurrence,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
		task.TaskID,
		task.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "tasks", "task_id", task.TaskID, "update", "task")
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, ownerID string, taskID string) error {
	query := `DELETE FROM tasks WHERE task_id = $1 AND owner_id = $2;`
	tag, err := r.pool.Exec(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return resolveMissingRow(ctx, r.pool, "tasks", "task_id", taskID, "delete", "task")
	}
	return nil
}

func (r *PgxTaskRepository) CountTasks(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE owner_id = $1;`
	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}
