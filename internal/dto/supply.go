package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplyRequest defines the data needed to register a supply. The
// initial stock becomes both CurrentStock and the immutable InitialStock
// snapshot.
type CreateSupplyRequest struct {
	Name         string          `json:"name" binding:"required"`
	Unit         string          `json:"unit" binding:"required"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	InitialStock decimal.Decimal `json:"initialStock"`
}

// UpdateSupplyRequest defines the updatable supply fields. CurrentStock is
// deliberately absent: stock only moves through the ledger or Restock.
type UpdateSupplyRequest struct {
	Name        *string          `json:"name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	CostPerUnit *decimal.Decimal `json:"costPerUnit,omitempty"`
}

// RestockSupplyRequest adds quantity to a supply's current stock.
type RestockSupplyRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required,gt=0"`
}

// SupplyResponse defines the data returned for a supply.
type SupplyResponse struct {
	SupplyID      string          `json:"supplyID"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	CurrentStock  decimal.Decimal `json:"currentStock"`
	InitialStock  decimal.Decimal `json:"initialStock"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToSupplyResponse converts a domain.Supply to SupplyResponse DTO.
func ToSupplyResponse(s *domain.Supply) SupplyResponse {
	return SupplyResponse{
		SupplyID:      s.SupplyID,
		Name:          s.Name,
		Unit:          s.Unit,
		CostPerUnit:   s.CostPerUnit,
		CurrentStock:  s.CurrentStock,
		InitialStock:  s.InitialStock,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSupplyResponse converts a slice of domain.Supply to SupplyResponse DTOs.
func ToListSupplyResponse(supplies []domain.Supply) []SupplyResponse {
	res := make([]SupplyResponse, len(supplies))
	for i := range supplies {
		res[i] = ToSupplyResponse(&supplies[i])
	}
	return res
}
