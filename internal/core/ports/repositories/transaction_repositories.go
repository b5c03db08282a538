package repositories

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// TransactionRepository persists money movements. Every method is scoped by
// owner: reads return only the owner's rows and update/delete affect at most
// one row matched by id AND owner.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns the owner's full collection, date descending.
	// An unprovisioned schema yields apperrors.ErrBackendNotReady.
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error
}
