package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// TransactionRepositoryFacade defines persistence operations for financial
// ledger entries.
type TransactionRepositoryFacade interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}
