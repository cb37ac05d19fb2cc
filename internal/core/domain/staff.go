package domain

import "github.com/shopspring/decimal"

// EmploymentType classifies how a staff member is engaged.
type EmploymentType string

const (
	EmploymentPermanent  EmploymentType = "PERMANENT"
	EmploymentTemporary  EmploymentType = "TEMPORARY"
	EmploymentContractor EmploymentType = "CONTRACTOR"
)

// Staff represents a worker or collaborator who can be responsible for tasks.
type Staff struct {
	StaffID        string          `json:"staffID"` // Primary Key (UUID, or local_ prefixed)
	OwnerID        string          `json:"ownerID"` // FK -> users.user_id
	Name           string          `json:"name"`
	Contact        string          `json:"contact"`
	EmploymentType EmploymentType  `json:"employmentType"`
	DailyRate      decimal.Decimal `json:"dailyRate"` // Base daily rate
	AuditFields
}
