package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/fincaops/fincaops/pkg/clients/advisor"
)

// advisorService builds a farm snapshot for the advisor collaborator and
// routes approved suggestions through the regular entity services, so every
// applied proposal goes through the same validation and lifecycle paths as a
// manual edit.
type advisorService struct {
	client    advisor.Client
	taskSvc   portssvc.TaskSvcFacade
	staffSvc  portssvc.StaffSvcFacade
	supplySvc portssvc.SupplySvcFacade
}

// NewAdvisorService creates a new AdvisorService.
func NewAdvisorService(client advisor.Client, taskSvc portssvc.TaskSvcFacade, staffSvc portssvc.StaffSvcFacade, supplySvc portssvc.SupplySvcFacade) portssvc.AdvisorSvcFacade {
	return &advisorService{client: client, taskSvc: taskSvc, staffSvc: staffSvc, supplySvc: supplySvc}
}

var _ portssvc.AdvisorSvcFacade = (*advisorService)(nil)

func (s *advisorService) Suggest(ctx context.Context, ownerID string) ([]advisor.Suggestion, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	snapshot, err := s.buildSnapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.client.Suggest(ctx, snapshot)
	if err != nil {
		logger.Error("Advisor call failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	logger.Info("Advisor suggestions produced", slog.Int("count", len(suggestions)))
	return suggestions, nil
}

func (s *advisorService) buildSnapshot(ctx context.Context, ownerID string) (advisor.Snapshot, error) {
	tasks, err := s.taskSvc.ListTasks(ctx, ownerID)
	if err != nil {
		return advisor.Snapshot{}, fmt.Errorf("failed to list tasks for snapshot: %w", err)
	}
	staff, err := s.staffSvc.ListStaff(ctx, ownerID)
	if err != nil {
		return advisor.Snapshot{}, fmt.Errorf("failed to list staff for snapshot: %w", err)
	}
	supplies, err := s.supplySvc.ListSupplies(ctx, ownerID)
	if err != nil {
		return advisor.Snapshot{}, fmt.Errorf("failed to list supplies for snapshot: %w", err)
	}

	openByStaff := make(map[string]int)
	snapshot := advisor.Snapshot{}
	for i := range tasks {
		task := &tasks[i]
		if task.Status == domain.TaskDone {
			continue
		}
		openByStaff[task.ResponsibleID]++
		snapshot.Tasks = append(snapshot.Tasks, advisor.TaskSummary{
			TaskID:        task.TaskID,
			Type:          task.Type,
			Status:        string(task.Status),
			ResponsibleID: task.ResponsibleID,
			Progress:      task.Progress,
		})
	}
	for i := range staff {
		member := &staff[i]
		snapshot.Staff = append(snapshot.Staff, advisor.StaffSummary{
			StaffID:        member.StaffID,
			Name:           member.Name,
			EmploymentType: string(member.EmploymentType),
			OpenTasks:      openByStaff[member.StaffID],
		})
	}
	for i := range supplies {
		supply := &supplies[i]
		snapshot.Supplies = append(snapshot.Supplies, advisor.SupplySummary{
			SupplyID:     supply.SupplyID,
			Name:         supply.Name,
			CurrentStock: supply.CurrentStock,
			InitialStock: supply.InitialStock,
		})
	}
	return snapshot, nil
}

func (s *advisorService) Apply(ctx context.Context, ownerID string, req dto.ApplySuggestionRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	suggestion := req.Suggestion

	switch suggestion.Kind {
	case "reassign_task":
		if suggestion.StaffID == "" {
			return fmt.Errorf("%w: reassign_task requires a staffID", apperrors.ErrValidation)
		}
		if _, err := s.staffSvc.GetStaffByID(ctx, ownerID, suggestion.StaffID); err != nil {
			return fmt.Errorf("failed to verify staff member for reassignment: %w", err)
		}
		_, err := s.taskSvc.UpdateTask(ctx, ownerID, suggestion.TargetID, dto.UpdateTaskRequest{
			ResponsibleID: &suggestion.StaffID,
		})
		if err != nil {
			return fmt.Errorf("failed to reassign task: %w", err)
		}
	case "restock_supply":
		if !suggestion.Quantity.IsPositive() {
			return fmt.Errorf("%w: restock_supply requires a positive quantity", apperrors.ErrValidation)
		}
		_, err := s.supplySvc.RestockSupply(ctx, ownerID, suggestion.TargetID, dto.RestockSupplyRequest{
			Quantity: suggestion.Quantity,
		})
		if err != nil {
			return fmt.Errorf("failed to restock supply: %w", err)
		}
	default:
		return fmt.Errorf("%w: unknown suggestion kind %q", apperrors.ErrValidation, suggestion.Kind)
	}

	logger.Info("Suggestion applied",
		slog.String("kind", suggestion.Kind),
		slog.String("target_id", suggestion.TargetID))
	return nil
}
