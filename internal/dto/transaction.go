package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a money movement.
// The site attribution is never accepted from the client; it is derived from
// the name's "Person/Site" convention on the server.
type CreateTransactionRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	Type            domain.TransactionType `json:"type" binding:"required,oneof=in out"`
	PersonType      domain.PersonType      `json:"personType" binding:"required,oneof=worker supplier"`
	Note            string                 `json:"note" binding:"required"`
	AdditionalNotes string                 `json:"additionalNotes"`
	Date            time.Time              `json:"date" binding:"required"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Name            *string                 `json:"name"`
	Amount          *decimal.Decimal        `json:"amount"`
	Type            *domain.TransactionType `json:"type" binding:"omitempty,oneof=in out"`
	PersonType      *domain.PersonType      `json:"personType" binding:"omitempty,oneof=worker supplier"`
	Note            *string                 `json:"note"`
	AdditionalNotes *string                 `json:"additionalNotes"`
	Date            *time.Time              `json:"date"`
}

// TransactionResponse defines the data returned for a transaction.
// Site carries the display label; untagged transactions show "Extra".
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Name            string                 `json:"name"`
	Amount          decimal.Decimal        `json:"amount"`
	Type            domain.TransactionType `json:"type"`
	PersonType      domain.PersonType      `json:"personType"`
	Note            string                 `json:"note"`
	AdditionalNotes string                 `json:"additionalNotes,omitempty"`
	Date            time.Time              `json:"date"`
	Site            string                 `json:"site"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps the owner's transaction collection.
// SetupRequired is true when the backend schema has not been provisioned yet;
// the list is empty in that case, not an error.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	Search        *TotalsResponse       `json:"search,omitempty"`
	SetupRequired bool                  `json:"setupRequired,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Name:            txn.Name,
		Amount:          txn.Amount,
		Type:            txn.Type,
		PersonType:      txn.PersonType,
		Note:            txn.Note,
		AdditionalNotes: txn.AdditionalNotes,
		Date:            txn.Date,
		Site:            txn.Site.Label(),
		CreatedAt:       txn.CreatedAt,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to ListTransactionsResponse DTO
func ToListTransactionsResponse(txns []domain.Transaction, setupRequired bool) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{
		Transactions:  res,
		SetupRequired: setupRequired,
	}
}
