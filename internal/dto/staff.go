package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest defines the data needed to register a staff member.
type CreateStaffRequest struct {
	Name           string                `json:"name" binding:"required"`
	Contact        string                `json:"contact"`
	EmploymentType domain.EmploymentType `json:"employmentType" binding:"required,oneof=PERMANENT TEMPORARY CONTRACTOR"`
	DailyRate      decimal.Decimal       `json:"dailyRate"`
}

// UpdateStaffRequest defines the updatable staff fields.
type UpdateStaffRequest struct {
	Name           *string                `json:"name,omitempty"`
	Contact        *string                `json:"contact,omitempty"`
	EmploymentType *domain.EmploymentType `json:"employmentType,omitempty" binding:"omitempty,oneof=PERMANENT TEMPORARY CONTRACTOR"`
	DailyRate      *decimal.Decimal       `json:"dailyRate,omitempty"`
}

// StaffResponse defines the data returned for a staff member.
type StaffResponse struct {
	StaffID        string                `json:"staffID"`
	Name           string                `json:"name"`
	Contact        string                `json:"contact"`
	EmploymentType domain.EmploymentType `json:"employmentType"`
	DailyRate      decimal.Decimal       `json:"dailyRate"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO.
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:        s.StaffID,
		Name:           s.Name,
		Contact:        s.Contact,
		EmploymentType: s.EmploymentType,
		DailyRate:      s.DailyRate,
		CreatedAt:      s.CreatedAt,
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}

// ToListStaffResponse converts a slice of domain.Staff to StaffResponse DTOs.
func ToListStaffResponse(staff []domain.Staff) []StaffResponse {
	res := make([]StaffResponse, len(staff))
	for i := range staff {
		res[i] = ToStaffResponse(&staff[i])
	}
	return res
}
