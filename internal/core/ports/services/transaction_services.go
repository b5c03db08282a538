package services

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/core/ledger"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction owned by userID.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the ledger for userID, newest first. A
	// non-empty query keeps only transactions whose name contains it
	// case-insensitively; the returned totals cover the matched set.
	ListTransactions(ctx context.Context, userID string, query string) ([]domain.Transaction, ledger.Totals, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction. The site attribution is
	// derived from the name before the row is written.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
