package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// CategoryLabor is the category assigned to expense entries created by the
// task lifecycle controller when it closes out a finished task's labor cost.
const CategoryLabor = "Labor"

// Transaction is a financial ledger entry, created manually by the user or
// automatically by the task lifecycle controller on financial closing.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID, or local_ prefixed)
	OwnerID       string          `json:"ownerID"`       // FK -> users.user_id
	Type          TransactionType `json:"type"`          // INCOME or EXPENSE
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	Category      string          `json:"category"`
	LotID         *string         `json:"lotID,omitempty"` // Optional FK -> lots.lot_id
	AuditFields
}
