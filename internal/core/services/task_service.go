package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/shopspring/decimal"
)

// recurrenceNote is written into the observations of auto-spawned occurrences.
const recurrenceNote = "Tarea recurrente generada automáticamente"

// taskService manages tasks and runs the lifecycle side effects when a task
// transitions into DONE: posting the labor expense and spawning the next
// occurrence of a recurring task. The side effects run after the task write
// committed and never roll it back; their errors surface as warnings.
type taskService struct {
	taskRepo   portsrepo.TaskRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
	usageRepo  portsrepo.SupplyUsageRepositoryFacade
	supplyRepo portsrepo.SupplyRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	quota      portssvc.QuotaGuard
	newID      portsrepo.IDGenerator
}

// NewTaskService creates a new TaskService. ledgerRepo may be nil when the
// backend has no batch primitive; task deletion then requires the task to
// have no usage records.
func NewTaskService(
	taskRepo portsrepo.TaskRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	usageRepo portsrepo.SupplyUsageRepositoryFacade,
	supplyRepo portsrepo.SupplyRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	quota portssvc.QuotaGuard,
	newID portsrepo.IDGenerator,
) portssvc.TaskSvcFacade {
	return &taskService{
		taskRepo:   taskRepo,
		txnRepo:    txnRepo,
		usageRepo:  usageRepo,
		supplyRepo: supplyRepo,
		ledgerRepo: ledgerRepo,
		quota:      quota,
		newID:      newID,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, ownerID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.taskRepo.CountTasks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	if err := s.quota.Check(ctx, ownerID, portssvc.FeatureTasks, count); err != nil {
		return nil, err
	}

	var recurrence *domain.Recurrence
	if req.Recurrence != nil {
		recurrence = &domain.Recurrence{
			Interval:  req.Recurrence.Interval,
			Frequency: req.Recurrence.Frequency,
			Enabled:   req.Recurrence.Enabled,
		}
	}

	now := time.Now().UTC()
	task := domain.Task{
		TaskID:         s.newID(),
		OwnerID:        ownerID,
		LotID:          req.LotID,
		Category:       req.Category,
		Type:           req.Type,
		ResponsibleID:  req.ResponsibleID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         domain.TaskToDo,
		Progress:       0,
		PlannedManDays: req.PlannedManDays,
		PlannedCost:    req.PlannedCost,
		SupplyCost:     decimal.Zero,
		ActualCost:     decimal.Zero,
		Observations:   req.Observations,
		Recurrence:     recurrence,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		logger.Error("Failed to save task", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	logger.Info("Task created", slog.String("task_id", task.TaskID))
	return &task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, ownerID string, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask persists the edit and, when the status just moved into DONE,
// runs the closing side effects. A side-effect failure is returned together
// with the already-saved task so the caller can surface it as a warning.
func (s *taskService) UpdateTask(ctx context.Context, ownerID string, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	task, err := s.taskRepo.FindTaskByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task for update: %w", err)
	}
	wasDone := task.Status == domain.TaskDone

	if req.LotID != nil {
		task.LotID = *req.LotID
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Type != nil {
		task.Type = *req.Type
	}
	if req.ResponsibleID != nil {
		task.ResponsibleID = *req.ResponsibleID
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = req.EndDate
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}
	if req.PlannedManDays != nil {
		task.PlannedManDays = *req.PlannedManDays
	}
	if req.PlannedCost != nil {
		task.PlannedCost = *req.PlannedCost
	}
	if req.ActualCost != nil {
		if req.ActualCost.LessThan(task.SupplyCost) {
			return nil, fmt.Errorf("%w: actual cost cannot be below the accumulated supply cost %s",
				apperrors.ErrValidation, task.SupplyCost.String())
		}
		task.ActualCost = *req.ActualCost
	}
	if req.Observations != nil {
		task.Observations = *req.Observations
	}
	if req.Recurrence != nil {
		task.Recurrence = &domain.Recurrence{
			Interval:  req.Recurrence.Interval,
			Frequency: req.Recurrence.Frequency,
			Enabled:   req.Recurrence.Enabled,
		}
	}
	task.LastUpdatedAt = time.Now().UTC()
	task.LastUpdatedBy = ownerID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		logger.Error("Failed to update task", slog.String("error", err.Error()), slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if wasDone || task.Status != domain.TaskDone {
		return task, nil
	}
	return task, s.onTaskCompleted(ctx, ownerID, task)
}

// onTaskCompleted fires once per task, on the first write that lands it in
// DONE. The effects run sequentially and independently: a failed labor
// expense does not stop the recurrence spawn.
func (s *taskService) onTaskCompleted(ctx context.Context, ownerID string, task *domain.Task) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	var effectErrs []error

	laborCost := task.ActualCost.Sub(task.SupplyCost)
	if laborCost.IsPositive() {
		now := time.Now().UTC()
		txn := domain.Transaction{
			TransactionID: s.newID(),
			OwnerID:       ownerID,
			Type:          domain.Expense,
			Date:          task.ClosingDate(),
			Description:   fmt.Sprintf("Mano de obra: %s", task.Type),
			Amount:        laborCost,
			Category:      domain.CategoryLabor,
			LotID:         &task.LotID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     ownerID,
				LastUpdatedAt: now,
				LastUpdatedBy: ownerID,
			},
		}
		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			logger.Error("Failed to post labor expense for completed task",
				slog.String("error", err.Error()), slog.String("task_id", task.TaskID))
			effectErrs = append(effectErrs, fmt.Errorf("failed to post labor expense: %w", err))
		} else {
			logger.Info("Labor expense posted",
				slog.String("task_id", task.TaskID),
				slog.String("amount", laborCost.String()))
		}
	}

	if task.IsRecurring() {
		if err := s.spawnNextOccurrence(ctx, ownerID, task); err != nil {
			logger.Error("Failed to spawn recurring task",
				slog.String("error", err.Error()), slog.String("task_id", task.TaskID))
			effectErrs = append(effectErrs, fmt.Errorf("failed to spawn recurring task: %w", err))
		}
	}

	return errors.Join(effectErrs...)
}

// spawnNextOccurrence creates the follow-up task of a recurring one that was
// just closed. The new occurrence starts from scratch: TODO, zero progress,
// no accumulated costs, no end date.
func (s *taskService) spawnNextOccurrence(ctx context.Context, ownerID string, task *domain.Task) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	recurrence := *task.Recurrence
	now := time.Now().UTC()
	next := domain.Task{
		TaskID:         s.newID(),
		OwnerID:        ownerID,
		LotID:          task.LotID,
		Category:       task.Category,
		Type:           task.Type,
		ResponsibleID:  task.ResponsibleID,
		StartDate:      task.NextStartDate(),
		EndDate:        nil,
		Status:         domain.TaskToDo,
		Progress:       0,
		PlannedManDays: task.PlannedManDays,
		PlannedCost:    task.PlannedCost,
		SupplyCost:     decimal.Zero,
		ActualCost:     decimal.Zero,
		Observations:   recurrenceNote,
		Recurrence:     &recurrence,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, next); err != nil {
		return err
	}

	logger.Info("Recurring task spawned",
		slog.String("task_id", next.TaskID),
		slog.String("previous_task_id", task.TaskID),
		slog.Time("start_date", next.StartDate))
	return nil
}

// DeleteTask removes a task. When the task has usage records the deletion
// cascades through the ledger: every usage is reversed into its supply's
// stock and deleted together with the task in one commit.
func (s *taskService) DeleteTask(ctx context.Context, ownerID string, taskID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	task, err := s.taskRepo.FindTaskByID(ctx, ownerID, taskID)
	if err != nil {
		return fmt.Errorf("failed to find task for deletion: %w", err)
	}

	usages, err := s.usageRepo.ListUsagesByTask(ctx, ownerID, taskID)
	if err != nil {
		return fmt.Errorf("failed to list usages for task deletion: %w", err)
	}

	if len(usages) == 0 {
		if err := s.taskRepo.DeleteTask(ctx, ownerID, taskID); err != nil {
			logger.Error("Failed to delete task", slog.String("error", err.Error()), slog.String("task_id", taskID))
			return fmt.Errorf("failed to delete task: %w", err)
		}
		logger.Info("Task deleted", slog.String("task_id", taskID))
		return nil
	}

	if s.ledgerRepo == nil {
		return fmt.Errorf("%w: cannot cascade task deletion without the stock ledger", apperrors.ErrUnsupported)
	}

	// Restore each affected supply's stock once, summing quantities across
	// the task's usages of it.
	restoredBySupply := make(map[string]*domain.Supply)
	usageIDs := make([]string, 0, len(usages))
	now := time.Now().UTC()
	for i := range usages {
		usage := &usages[i]
		usageIDs = append(usageIDs, usage.UsageID)

		supply, ok := restoredBySupply[usage.SupplyID]
		if !ok {
			supply, err = s.supplyRepo.FindSupplyByID(ctx, ownerID, usage.SupplyID)
			if err != nil {
				return fmt.Errorf("failed to find supply %s for cascade: %w", usage.SupplyID, err)
			}
			restoredBySupply[usage.SupplyID] = supply
		}
		supply.CurrentStock = supply.CurrentStock.Add(usage.Quantity)
		supply.LastUpdatedAt = now
		supply.LastUpdatedBy = ownerID
	}

	supplies := make([]domain.Supply, 0, len(restoredBySupply))
	for _, supply := range restoredBySupply {
		supplies = append(supplies, *supply)
	}

	if err := s.ledgerRepo.DeleteTaskCascade(ctx, *task, usageIDs, supplies); err != nil {
		logger.Error("Failed to cascade task deletion", slog.String("error", err.Error()), slog.String("task_id", taskID))
		return fmt.Errorf("failed to cascade task deletion: %w", err)
	}

	logger.Info("Task deleted with usage cascade",
		slog.String("task_id", taskID),
		slog.Int("usages_reversed", len(usageIDs)))
	return nil
}
