package dto

import (
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    string                 `json:"category"`
	LotID       *string                `json:"lotID,omitempty"`
}

// UpdateTransactionRequest defines the updatable transaction fields.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	Date        *time.Time              `json:"date,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Amount      *decimal.Decimal        `json:"amount,omitempty"`
	Category    *string                 `json:"category,omitempty"`
	LotID       *string                 `json:"lotID,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	Date          time.Time              `json:"date"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Category      string                 `json:"category"`
	LotID         *string                `json:"lotID,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		Category:      t.Category,
		LotID:         t.LotID,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
