package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// TransactionSvcFacade defines operations on financial ledger entries.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}
