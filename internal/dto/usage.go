package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyUsageRequest records a consumption of a supply by a task.
type ApplyUsageRequest struct {
	SupplyID string          `json:"supplyID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required,gt=0"`
	Date     *time.Time      `json:"date,omitempty"`
}

// UsageResponse defines the data returned for a supply usage record.
type UsageResponse struct {
	UsageID         string          `json:"usageID"`
	TaskID          string          `json:"taskID"`
	SupplyID        string          `json:"supplyID"`
	SupplyName      string          `json:"supplyName"`
	Quantity        decimal.Decimal `json:"quantity"`
	CostAtTimeOfUse decimal.Decimal `json:"costAtTimeOfUse"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToUsageResponse converts a domain.SupplyUsage to UsageResponse DTO.
func ToUsageResponse(u *domain.SupplyUsage) UsageResponse {
	return UsageResponse{
		UsageID:         u.UsageID,
		TaskID:          u.TaskID,
		SupplyID:        u.SupplyID,
		SupplyName:      u.SupplyName,
		Quantity:        u.Quantity,
		CostAtTimeOfUse: u.CostAtTimeOfUse,
		CreatedAt:       u.CreatedAt,
	}
}

// ToListUsageResponse converts a slice of domain.SupplyUsage to DTOs.
func ToListUsageResponse(usages []domain.SupplyUsage) []UsageResponse {
	res := make([]UsageResponse, len(usages))
	for i := range usages {
		res[i] = ToUsageResponse(&usages[i])
	}
	return res
}
