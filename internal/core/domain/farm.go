package domain

import "github.com/shopspring/decimal"

// Farm is the productive unit a user operates. Each owner has exactly one;
// lots hang off it.
type Farm struct {
	FarmID   string          `json:"farmID"`   // Primary Key (UUID, or local_ prefixed)
	OwnerID  string          `json:"ownerID"`  // FK -> users.user_id
	Name     string          `json:"name"`     // User-defined farm name
	Location string          `json:"location"` // Free-text location
	Area     decimal.Decimal `json:"area"`     // Total area in hectares
	AuditFields
}
