package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// TaskRepositoryFacade defines persistence operations for tasks.
//
// DeleteTask here removes the task document only; callers that need the
// usage-reversal cascade must go through the ledger repository instead.
type TaskRepositoryFacade interface {
	SaveTask(ctx context.Context, task domain.Task) error
	FindTaskByID(ctx context.Context, ownerID string, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, ownerID string, taskID string) error
	CountTasks(ctx context.Context, ownerID string) (int64, error)
}
