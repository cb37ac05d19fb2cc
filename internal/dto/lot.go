package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLotRequest defines the data needed to create a new lot.
type CreateLotRequest struct {
	Name       string          `json:"name" binding:"required"`
	Crop       string          `json:"crop"`
	Area       decimal.Decimal `json:"area"`
	SowingDate *time.Time      `json:"sowingDate,omitempty"`
}

// UpdateLotRequest defines the updatable lot fields. Absent fields are left
// untouched (merge semantics).
type UpdateLotRequest struct {
	Name       *string          `json:"name,omitempty"`
	Crop       *string          `json:"crop,omitempty"`
	Area       *decimal.Decimal `json:"area,omitempty"`
	SowingDate *time.Time       `json:"sowingDate,omitempty"`
}

// LotResponse defines the data returned for a lot.
type LotResponse struct {
	LotID         string          `json:"lotID"`
	FarmID        string          `json:"farmID"`
	Name          string          `json:"name"`
	Crop          string          `json:"crop"`
	Area          decimal.Decimal `json:"area"`
	SowingDate    *time.Time      `json:"sowingDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToLotResponse converts a domain.Lot to LotResponse DTO.
func ToLotResponse(l *domain.Lot) LotResponse {
	return LotResponse{
		LotID:         l.LotID,
		FarmID:        l.FarmID,
		Name:          l.Name,
		Crop:          l.Crop,
		Area:          l.Area,
		SowingDate:    l.SowingDate,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToListLotResponse converts a slice of domain.Lot to LotResponse DTOs.
func ToListLotResponse(lots []domain.Lot) []LotResponse {
	res := make([]LotResponse, len(lots))
	for i := range lots {
		res[i] = ToLotResponse(&lots[i])
	}
	return res
}
