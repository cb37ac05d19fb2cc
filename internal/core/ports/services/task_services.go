package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// TaskSvcFacade defines operations on tasks, including the lifecycle
// side effects fired on the transition into DONE.
//
// UpdateTask may return both a non-nil task and a non-nil error: the task
// update itself succeeded but a side effect (financial closing, recurrence
// spawning) failed. Callers should surface the error as a warning, not roll
// anything back.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, ownerID string, req dto.CreateTaskRequest) (*domain.Task, error)
	GetTaskByID(ctx context.Context, ownerID string, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, ownerID string, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID string, taskID string) error
}
