// Package ledger holds the aggregation engine: pure folds that turn a flat
// transaction collection into balance summaries grouped by person, by site,
// or by search match. Every function here is stateless and side-effect free;
// the same input slice always produces the same output, and a zero-length
// input yields all-zero summaries. Rounding and currency formatting are view
// concerns and are deliberately absent.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// Totals is the in/out/net tuple over some subset of transactions.
// Net >= 0 means money is owed to the ledger owner.
type Totals struct {
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Net      decimal.Decimal `json:"net"`
	Count    int             `json:"count"`
}

// IsPositive reports whether the owner is owed money (or is even).
func (t Totals) IsPositive() bool {
	return t.Net.GreaterThanOrEqual(decimal.Zero)
}

func newTotals() Totals {
	return Totals{TotalIn: decimal.Zero, TotalOut: decimal.Zero, Net: decimal.Zero}
}

func (t *Totals) add(txn domain.Transaction) {
	if txn.Type == domain.MoneyIn {
		t.TotalIn = t.TotalIn.Add(txn.Amount)
	} else {
		t.TotalOut = t.TotalOut.Add(txn.Amount)
	}
	t.Net = t.TotalIn.Sub(t.TotalOut)
	t.Count++
}

// PersonSummary is the balance position of a single counterparty.
type PersonSummary struct {
	Name string `json:"name"`
	Totals
	PersonType domain.PersonType `json:"personType"`
	LastDate   time.Time         `json:"lastDate"`
}

// GlobalTotals folds the entire collection into one Totals tuple.
func GlobalTotals(txns []domain.Transaction) Totals {
	t := newTotals()
	for _, txn := range txns {
		t.add(txn)
	}
	return t
}

// SummarizeByPerson groups transactions by exact name equality and computes
// per-group totals. Groups appear in insertion order of first appearance.
func SummarizeByPerson(txns []domain.Transaction) []PersonSummary {
	return summarizeGrouped(txns, func(txn domain.Transaction) string {
		return txn.Name
	})
}

// SummarizeSuppliers groups supplier transactions by the counterparty prefix
// before the site tag, so "ABC Suppliers/SiteA" and "ABC Suppliers/SiteB"
// fold into one group.
func SummarizeSuppliers(txns []domain.Transaction) []PersonSummary {
	suppliers := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.PersonType == domain.Supplier {
			suppliers = append(suppliers, txn)
		}
	}
	return summarizeGrouped(suppliers, func(txn domain.Transaction) string {
		return domain.PersonName(txn.Name)
	})
}

func summarizeGrouped(txns []domain.Transaction, keyOf func(domain.Transaction) string) []PersonSummary {
	index := make(map[string]int, len(txns))
	summaries := make([]PersonSummary, 0, len(txns))
	for _, txn := range txns {
		key := keyOf(txn)
		i, seen := index[key]
		if !seen {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, PersonSummary{
				Name:       key,
				Totals:     newTotals(),
				PersonType: txn.PersonType,
			})
		}
		summaries[i].add(txn)
		if txn.Date.After(summaries[i].LastDate) {
			summaries[i].LastDate = txn.Date
		}
	}
	return summaries
}

// SortByMagnitude orders summaries by absolute net balance, largest first,
// with name lexical order as the explicit tie-break.
func SortByMagnitude(summaries []PersonSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		mi, mj := summaries[i].Net.Abs(), summaries[j].Net.Abs()
		if !mi.Equal(mj) {
			return mi.GreaterThan(mj)
		}
		return summaries[i].Name < summaries[j].Name
	})
}

// SiteSummary is the budget position of a single site.
type SiteSummary struct {
	Site          domain.Site     `json:"site"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
	NetAmount     decimal.Decimal `json:"netAmount"` // spent - received
	BudgetUsedPct decimal.Decimal `json:"budgetUsedPct"`
	Remaining     decimal.Decimal `json:"remaining"` // negative means over budget
	Count         int             `json:"count"`
}

// SummarizeSite folds the transactions attributed to the given site (by name
// equality, the soft reference) into its budget position. Site creation
// rejects zero budgets, but a zero slipping through yields a zero percentage
// rather than a division blow-up.
func SummarizeSite(site domain.Site, txns []domain.Transaction) SiteSummary {
	s := SiteSummary{
		Site:          site,
		TotalSpent:    decimal.Zero,
		TotalReceived: decimal.Zero,
	}
	for _, txn := range txns {
		if txn.Site.SiteName() != site.Name {
			continue
		}
		if txn.Type == domain.MoneyOut {
			s.TotalSpent = s.TotalSpent.Add(txn.Amount)
		} else {
			s.TotalReceived = s.TotalReceived.Add(txn.Amount)
		}
		s.Count++
	}
	s.NetAmount = s.TotalSpent.Sub(s.TotalReceived)
	if site.Budget.IsPositive() {
		s.BudgetUsedPct = s.NetAmount.Div(site.Budget).Mul(decimal.NewFromInt(100))
	} else {
		s.BudgetUsedPct = decimal.Zero
	}
	s.Remaining = site.Budget.Sub(s.NetAmount)
	return s
}

// UncategorizedSummary is the "Extra" bucket: transactions whose name carries
// no site tag.
type UncategorizedSummary struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"` // out positive, in negative
}

// SummarizeUncategorized folds the untagged transactions. The sign convention
// mirrors the site view: money out counts positive (spend), money in negative.
func SummarizeUncategorized(txns []domain.Transaction) UncategorizedSummary {
	s := UncategorizedSummary{Total: decimal.Zero}
	for _, txn := range txns {
		if !txn.Site.IsUncategorized() {
			continue
		}
		if txn.Type == domain.MoneyOut {
			s.Total = s.Total.Add(txn.Amount)
		} else {
			s.Total = s.Total.Sub(txn.Amount)
		}
		s.Count++
	}
	return s
}

// FilterByName returns the transactions whose name contains the query,
// case-insensitively. An empty (or whitespace) query is the identity filter.
func FilterByName(txns []domain.Transaction, query string) []domain.Transaction {
	query = strings.TrimSpace(query)
	if query == "" {
		return txns
	}
	needle := strings.ToLower(query)
	matched := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if strings.Contains(strings.ToLower(txn.Name), needle) {
			matched = append(matched, txn)
		}
	}
	return matched
}

// SearchSummary computes totals over the subset matching the query.
func SearchSummary(txns []domain.Transaction, query string) Totals {
	return GlobalTotals(FilterByName(txns, query))
}

// SortByDateDesc orders transactions newest first, with creation time as a
// stable secondary key for same-day entries.
func SortByDateDesc(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
}
