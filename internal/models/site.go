package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Site mirrors the sites table.
type Site struct {
	SiteID      string          `db:"site_id"`
	OwnerID     string          `db:"owner_id"`
	Name        string          `db:"name"`
	Budget      decimal.Decimal `db:"budget"`
	CreatedDate time.Time       `db:"created_date"`
	AuditFields
}
