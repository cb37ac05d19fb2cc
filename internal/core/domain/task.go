package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus is the lifecycle state of a task. DONE is terminal: the
// lifecycle controller only fires side effects on the transition into it.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskPending    TaskStatus = "PENDING"
	TaskDone       TaskStatus = "DONE"
)

// RecurrenceFrequency is the unit a recurrence interval is expressed in.
// Values are kept in the Spanish form the mobile clients send.
type RecurrenceFrequency string

const (
	FrequencyDays   RecurrenceFrequency = "dias"
	FrequencyWeeks  RecurrenceFrequency = "semanas"
	FrequencyMonths RecurrenceFrequency = "meses"
)

// Recurrence describes how a task repeats. Interval and Frequency must both
// be present for the task to be treated as recurring.
type Recurrence struct {
	Interval  int                 `json:"interval"`  // Positive number of frequency units
	Frequency RecurrenceFrequency `json:"frequency"` // dias | semanas | meses
	Enabled   bool                `json:"enabled"`
}

// Task is a scheduled unit of agricultural work on a lot.
//
// SupplyCost is the sum of CostAtTimeOfUse over the task's usage records and
// is only mutated by the stock ledger. ActualCost = SupplyCost + labor, so
// ActualCost >= SupplyCost holds whenever the record is consistent; the labor
// component is derived by subtraction, never stored.
type Task struct {
	TaskID          string          `json:"taskID"`        // Primary Key (UUID, or local_ prefixed)
	OwnerID         string          `json:"ownerID"`       // FK -> users.user_id
	LotID           string          `json:"lotID"`         // FK -> lots.lot_id
	Category        string          `json:"category"`      // e.g. "Siembra", "Fumigación"
	Type            string          `json:"type"`          // Free-text description of the work
	ResponsibleID   string          `json:"responsibleID"` // FK -> staff.staff_id
	StartDate       time.Time       `json:"startDate"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	Status          TaskStatus      `json:"status"`
	Progress        int             `json:"progress"` // 0..100
	PlannedManDays  decimal.Decimal `json:"plannedManDays"`
	PlannedCost     decimal.Decimal `json:"plannedCost"`
	SupplyCost      decimal.Decimal `json:"supplyCost"`
	ActualCost      decimal.Decimal `json:"actualCost"`
	DependsOnTaskID *string         `json:"dependsOnTaskID,omitempty"`
	Observations    string          `json:"observations"`
	Recurrence      *Recurrence     `json:"recurrence,omitempty"`
	AuditFields
}

// IsRecurring reports whether the task should spawn a follow-up occurrence
// when it is closed.
func (t *Task) IsRecurring() bool {
	return t.Recurrence != nil && t.Recurrence.Enabled && t.Recurrence.Interval > 0
}

// ClosingDate is the date the task is considered finished on: the end date
// when set, otherwise the start date.
func (t *Task) ClosingDate() time.Time {
	if t.EndDate != nil {
		return *t.EndDate
	}
	return t.StartDate
}

// NextStartDate computes the start of the next occurrence from the closing
// date of this one. Callers must check IsRecurring first.
func (t *Task) NextStartDate() time.Time {
	from := t.ClosingDate()
	switch t.Recurrence.Frequency {
	case FrequencyDays:
		return from.AddDate(0, 0, t.Recurrence.Interval)
	case FrequencyWeeks:
		return from.AddDate(0, 0, 7*t.Recurrence.Interval)
	case FrequencyMonths:
		return from.AddDate(0, t.Recurrence.Interval, 0)
	default:
		return from
	}
}
