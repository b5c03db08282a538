package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Site is a construction site with a spending budget. Transactions reference
// sites by name equality only (a soft reference): deleting a site neither
// deletes nor re-attributes its transactions.
type Site struct {
	SiteID      string          `json:"siteID"`
	OwnerID     string          `json:"-"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"` // strictly positive, enforced at creation
	CreatedDate time.Time       `json:"createdDate"`
	AuditFields
}
