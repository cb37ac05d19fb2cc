package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot represents a parcel of productive land inside a farm.
type Lot struct {
	LotID      string          `json:"lotID"`   // Primary Key (UUID, or local_ prefixed)
	OwnerID    string          `json:"ownerID"` // FK -> users.user_id
	FarmID     string          `json:"farmID"`  // FK -> farms.farm_id
	Name       string          `json:"name"`
	Crop       string          `json:"crop"`
	Area       decimal.Decimal `json:"area"`                 // Hectares
	SowingDate *time.Time      `json:"sowingDate,omitempty"` // Optional
	AuditFields
}
