package domain

import "github.com/shopspring/decimal"

// SupplyUsage is an immutable record of one consumption of a Supply by a
// Task. CostAtTimeOfUse snapshots costPerUnit * quantity at the moment the
// usage was recorded and is never recomputed, so later price changes do not
// rewrite history. Created and deleted exclusively through the stock ledger.
type SupplyUsage struct {
	UsageID         string          `json:"usageID"`    // Primary Key (UUID)
	OwnerID         string          `json:"ownerID"`    // FK -> users.user_id
	TaskID          string          `json:"taskID"`     // FK -> tasks.task_id
	SupplyID        string          `json:"supplyID"`   // FK -> supplies.supply_id
	SupplyName      string          `json:"supplyName"` // Name snapshot at time of use
	Quantity        decimal.Decimal `json:"quantity"`
	CostAtTimeOfUse decimal.Decimal `json:"costAtTimeOfUse"`
	AuditFields
}
