package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a money movement relative to the
// ledger owner: MoneyIn flows toward the owner, MoneyOut flows away.
type TransactionType string

const (
	MoneyIn  TransactionType = "in"
	MoneyOut TransactionType = "out"
)

// PersonType classifies the counterparty of a transaction.
type PersonType string

const (
	Worker   PersonType = "worker"
	Supplier PersonType = "supplier"
)

// UncategorizedLabel is the wire label for transactions without a site tag.
// Kept for API compatibility; internal code uses SiteAttribution instead of
// comparing against this string.
const UncategorizedLabel = "Extra"

// SiteAttribution is the site bucket a transaction belongs to: either a named
// site or the uncategorized bucket. The zero value is uncategorized.
type SiteAttribution struct {
	siteName string
}

// NamedSite returns an attribution pointing at the given site name.
// An empty (or whitespace-only) name yields the uncategorized attribution.
func NamedSite(name string) SiteAttribution {
	name = strings.TrimSpace(name)
	if name == "" || name == UncategorizedLabel {
		return Uncategorized()
	}
	return SiteAttribution{siteName: name}
}

// Uncategorized returns the attribution for transactions without a site tag.
func Uncategorized() SiteAttribution {
	return SiteAttribution{}
}

// IsUncategorized reports whether the attribution is the uncategorized bucket.
func (a SiteAttribution) IsUncategorized() bool {
	return a.siteName == ""
}

// SiteName returns the named site, or the empty string for uncategorized.
func (a SiteAttribution) SiteName() string {
	return a.siteName
}

// Label returns the display/wire label: the site name, or "Extra".
func (a SiteAttribution) Label() string {
	if a.siteName == "" {
		return UncategorizedLabel
	}
	return a.siteName
}

// MarshalJSON renders the attribution as its wire label.
func (a SiteAttribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Label())
}

// UnmarshalJSON parses a wire label back into an attribution.
func (a *SiteAttribution) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	*a = NamedSite(label)
	return nil
}

// DeriveSite computes the site attribution embedded in a counterparty name
// via the "Person/Site" convention. Only the first '/' is significant; the
// tag is trimmed, and a missing or empty tag yields the uncategorized bucket.
func DeriveSite(name string) SiteAttribution {
	_, tag, found := strings.Cut(name, "/")
	if !found {
		return Uncategorized()
	}
	return NamedSite(tag)
}

// PersonName returns the counterparty portion of a name field: everything
// before the first '/', trimmed. Names without a site tag are returned
// trimmed as-is.
func PersonName(name string) string {
	person, _, _ := strings.Cut(name, "/")
	return strings.TrimSpace(person)
}

// Transaction is a single dated money movement between the ledger owner and a
// counterparty. Name keeps the raw user input, site tag included; Site is
// derived from Name on every mutation and never set independently.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	OwnerID         string          `json:"-"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"` // positive
	Type            TransactionType `json:"type"`
	PersonType      PersonType      `json:"personType"`
	Note            string          `json:"note"`
	AdditionalNotes string          `json:"additionalNotes,omitempty"`
	Date            time.Time       `json:"date"`
	Site            SiteAttribution `json:"site"`
	AuditFields
}

// NormalizeSite recomputes the derived Site field from Name. Every write path
// calls this so the stored attribution can never drift from the name field.
func (t *Transaction) NormalizeSite() {
	t.Site = DeriveSite(t.Name)
}
