package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFarmRequest defines the data needed to register the productive unit.
type CreateFarmRequest struct {
	Name     string          `json:"name" binding:"required"`
	Location string          `json:"location"`
	Area     decimal.Decimal `json:"area"`
}

// UpdateFarmRequest defines the updatable farm fields. Absent fields are left
// untouched (merge semantics).
type UpdateFarmRequest struct {
	Name     *string          `json:"name,omitempty"`
	Location *string          `json:"location,omitempty"`
	Area     *decimal.Decimal `json:"area,omitempty"`
}

// FarmResponse defines the data returned for a farm.
type FarmResponse struct {
	FarmID        string          `json:"farmID"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	Area          decimal.Decimal `json:"area"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToFarmResponse converts a domain.Farm to FarmResponse DTO.
func ToFarmResponse(f *domain.Farm) FarmResponse {
	return FarmResponse{
		FarmID:        f.FarmID,
		Name:          f.Name,
		Location:      f.Location,
		Area:          f.Area,
		CreatedAt:     f.CreatedAt,
		LastUpdatedAt: f.LastUpdatedAt,
	}
}
