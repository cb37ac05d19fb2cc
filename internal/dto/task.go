package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurrenceDTO mirrors domain.Recurrence on the wire.
type RecurrenceDTO struct {
	Interval  int                        `json:"interval" binding:"required,gt=0"`
	Frequency domain.RecurrenceFrequency `json:"frequency" binding:"required,oneof=dias semanas meses"`
	Enabled   bool                       `json:"enabled"`
}

// CreateTaskRequest defines the data needed to create a task.
type CreateTaskRequest struct {
	LotID          string          `json:"lotID" binding:"required"`
	Category       string          `json:"category"`
	Type           string          `json:"type" binding:"required"`
	ResponsibleID  string          `json:"responsibleID"`
	StartDate      time.Time       `json:"startDate" binding:"required"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	PlannedManDays decimal.Decimal `json:"plannedManDays"`
	PlannedCost    decimal.Decimal `json:"plannedCost"`
	Observations   string          `json:"observations"`
	Recurrence     *RecurrenceDTO  `json:"recurrence,omitempty"`
}

// UpdateTaskRequest defines the updatable task fields. Absent fields are left
// untouched; a status change into DONE triggers the lifecycle side effects.
// SupplyCost is deliberately absent: it only moves through the stock ledger.
type UpdateTaskRequest struct {
	LotID          *string            `json:"lotID,omitempty"`
	Category       *string            `json:"category,omitempty"`
	Type           *string            `json:"type,omitempty"`
	ResponsibleID  *string            `json:"responsibleID,omitempty"`
	StartDate      *time.Time         `json:"startDate,omitempty"`
	EndDate        *time.Time         `json:"endDate,omitempty"`
	Status         *domain.TaskStatus `json:"status,omitempty" binding:"omitempty,oneof=TODO IN_PROGRESS PENDING DONE"`
	Progress       *int               `json:"progress,omitempty" binding:"omitempty,min=0,max=100"`
	PlannedManDays *decimal.Decimal   `json:"plannedManDays,omitempty"`
	PlannedCost    *decimal.Decimal   `json:"plannedCost,omitempty"`
	ActualCost     *decimal.Decimal   `json:"actualCost,omitempty"`
	Observations   *string            `json:"observations,omitempty"`
	Recurrence     *RecurrenceDTO     `json:"recurrence,omitempty"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID          string             `json:"taskID"`
	LotID           string             `json:"lotID"`
	Category        string             `json:"category"`
	Type            string             `json:"type"`
	ResponsibleID   string             `json:"responsibleID"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         *time.Time         `json:"endDate,omitempty"`
	Status          domain.TaskStatus  `json:"status"`
	Progress        int                `json:"progress"`
	PlannedManDays  decimal.Decimal    `json:"plannedManDays"`
	PlannedCost     decimal.Decimal    `json:"plannedCost"`
	SupplyCost      decimal.Decimal    `json:"supplyCost"`
	ActualCost      decimal.Decimal    `json:"actualCost"`
	DependsOnTaskID *string            `json:"dependsOnTaskID,omitempty"`
	Observations    string             `json:"observations"`
	Recurrence      *domain.Recurrence `json:"recurrence,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
}

// UpdateTaskResponse carries the saved task plus side-effect warnings: the
// task update itself succeeded even when a closing or recurrence write did
// not.
type UpdateTaskResponse struct {
	Task    TaskResponse `json:"task"`
	Warning string       `json:"warning,omitempty"`
}

// ToTaskResponse converts a domain.Task to TaskResponse DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:          t.TaskID,
		LotID:           t.LotID,
		Category:        t.Category,
		Type:            t.Type,
		ResponsibleID:   t.ResponsibleID,
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		Status:          t.Status,
		Progress:        t.Progress,
		PlannedManDays:  t.PlannedManDays,
		PlannedCost:     t.PlannedCost,
		SupplyCost:      t.SupplyCost,
		ActualCost:      t.ActualCost,
		DependsOnTaskID: t.DependsOnTaskID,
		Observations:    t.Observations,
		Recurrence:      t.Recurrence,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}

// ToListTaskResponse converts a slice of domain.Task to TaskResponse DTOs.
func ToListTaskResponse(tasks []domain.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i])
	}
	return res
}
