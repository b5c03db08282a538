package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Site is a denormalized copy of
// the tag embedded in Name, recomputed by the service on every write; the
// column exists only so per-site queries stay cheap.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	OwnerID         string          `db:"owner_id"`
	Name            string          `db:"name"`
	Amount          decimal.Decimal `db:"amount"`
	Type            string          `db:"type"`        // in | out
	PersonType      string          `db:"person_type"` // worker | supplier
	Note            string          `db:"note"`
	AdditionalNotes string          `db:"additional_notes"`
	Date            time.Time       `db:"date"`
	Site            string          `db:"site"` // "" means uncategorized
	AuditFields
}
