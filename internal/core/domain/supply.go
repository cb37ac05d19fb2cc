package domain

import "github.com/shopspring/decimal"

// Supply is a consumable inventory item (fertilizer, seed, fuel...).
//
// CurrentStock is only mutated by the stock ledger (usage apply/reverse) and
// by explicit restocks; it must never go negative after a committed
// operation. InitialStock is an immutable snapshot taken at creation.
type Supply struct {
	SupplyID     string          `json:"supplyID"` // Primary Key (UUID, or local_ prefixed)
	OwnerID      string          `json:"ownerID"`  // FK -> users.user_id
	Name         string          `json:"name"`
	Unit         string          `json:"unit"` // Unit of measure (kg, L, bags...)
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	InitialStock decimal.Decimal `json:"initialStock"`
	AuditFields
}
