package services

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// ReportingSvcFacade defines operations for generating ledger reports.
// All reports are computed from the owner's transactions at request time;
// nothing is cached or pre-aggregated. A backend whose schema has not been
// provisioned yet yields empty reports with SetupRequired set, not an error.
type ReportingSvcFacade interface {
	// GetBalanceReport returns global in/out totals across the whole ledger.
	GetBalanceReport(ctx context.Context, userID string) (*dto.BalanceReport, error)

	// GetPeopleReport returns per-person summaries grouped by exact name,
	// optionally filtered by a case-insensitive substring query.
	GetPeopleReport(ctx context.Context, userID string, query string) (*dto.PeopleReport, error)

	// GetSupplierReport returns supplier summaries grouped by the name prefix
	// before the first slash, optionally filtered like GetPeopleReport.
	GetSupplierReport(ctx context.Context, userID string, query string) (*dto.PeopleReport, error)

	// GetSiteReport returns per-site budget summaries plus the uncategorized
	// spending bucket.
	GetSiteReport(ctx context.Context, userID string) (*dto.SiteReport, error)

	// GetSiteSummary returns the budget summary for a single site.
	GetSiteSummary(ctx context.Context, userID string, siteID string) (*dto.SiteSummaryResponse, error)
}
