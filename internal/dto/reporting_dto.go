package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/core/ledger"
)

// TotalsResponse represents an in/out/net tuple in a report response
type TotalsResponse struct {
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Net      decimal.Decimal `json:"net"`
	Count    int             `json:"count"`
}

// BalanceReport represents the global balance report response
type BalanceReport struct {
	Totals        TotalsResponse `json:"totals"`
	SetupRequired bool           `json:"setupRequired,omitempty"`
}

// PersonSummaryResponse represents one counterparty row in a people or
// supplier report. IsPositive means the owner is owed money (or even).
type PersonSummaryResponse struct {
	Name       string          `json:"name"`
	TotalIn    decimal.Decimal `json:"totalIn"`
	TotalOut   decimal.Decimal `json:"totalOut"`
	Net        decimal.Decimal `json:"net"`
	Count      int             `json:"count"`
	PersonType string          `json:"personType"`
	LastDate   time.Time       `json:"lastDate"`
	IsPositive bool            `json:"isPositive"`
}

// PeopleReport represents the people or supplier report response.
// Search holds totals over the rows matching the query; with an empty query
// it equals the global totals.
type PeopleReport struct {
	People        []PersonSummaryResponse `json:"people"`
	Search        TotalsResponse          `json:"search"`
	SetupRequired bool                    `json:"setupRequired,omitempty"`
}

// SiteSummaryResponse represents one site row in the site report
type SiteSummaryResponse struct {
	SiteID        string          `json:"siteID"`
	Name          string          `json:"name"`
	Budget        decimal.Decimal `json:"budget"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	BudgetUsedPct decimal.Decimal `json:"budgetUsedPct"`
	Remaining     decimal.Decimal `json:"remaining"`
	Count         int             `json:"count"`
}

// UncategorizedResponse represents the "Extra" bucket in the site report
type UncategorizedResponse struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// SiteReport represents the site report response
type SiteReport struct {
	Sites         []SiteSummaryResponse `json:"sites"`
	Uncategorized UncategorizedResponse `json:"uncategorized"`
	SetupRequired bool                  `json:"setupRequired,omitempty"`
}

// ToTotalsResponse converts a ledger.Totals to TotalsResponse DTO
func ToTotalsResponse(t ledger.Totals) TotalsResponse {
	return TotalsResponse{
		TotalIn:  t.TotalIn,
		TotalOut: t.TotalOut,
		Net:      t.Net,
		Count:    t.Count,
	}
}

// ToPersonSummaryResponse converts a ledger.PersonSummary to PersonSummaryResponse DTO
func ToPersonSummaryResponse(s ledger.PersonSummary) PersonSummaryResponse {
	return PersonSummaryResponse{
		Name:       s.Name,
		TotalIn:    s.TotalIn,
		TotalOut:   s.TotalOut,
		Net:        s.Net,
		Count:      s.Count,
		PersonType: string(s.PersonType),
		LastDate:   s.LastDate,
		IsPositive: s.IsPositive(),
	}
}

// ToSiteSummaryResponse converts a ledger.SiteSummary to SiteSummaryResponse DTO
func ToSiteSummaryResponse(s ledger.SiteSummary) SiteSummaryResponse {
	return SiteSummaryResponse{
		SiteID:        s.Site.SiteID,
		Name:          s.Site.Name,
		Budget:        s.Site.Budget,
		TotalSpent:    s.TotalSpent,
		TotalReceived: s.TotalReceived,
		NetAmount:     s.NetAmount,
		BudgetUsedPct: s.BudgetUsedPct,
		Remaining:     s.Remaining,
		Count:         s.Count,
	}
}
