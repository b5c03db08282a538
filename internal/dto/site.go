package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// CreateSiteRequest defines the data needed to create a site.
// A zero or negative budget is rejected up front; the aggregation layer
// depends on budgets being positive for percentage math.
type CreateSiteRequest struct {
	Name   string          `json:"name" binding:"required"`
	Budget decimal.Decimal `json:"budget" binding:"required"`
}

// SiteResponse defines the data returned for a site.
type SiteResponse struct {
	SiteID      string          `json:"siteID"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	CreatedDate time.Time       `json:"createdDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListSitesResponse wraps the owner's site collection.
type ListSitesResponse struct {
	Sites         []SiteResponse `json:"sites"`
	SetupRequired bool           `json:"setupRequired,omitempty"`
}

// ToSiteResponse converts a domain.Site to SiteResponse DTO
func ToSiteResponse(site *domain.Site) SiteResponse {
	return SiteResponse{
		SiteID:      site.SiteID,
		Name:        site.Name,
		Budget:      site.Budget,
		CreatedDate: site.CreatedDate,
		CreatedAt:   site.CreatedAt,
	}
}

// ToListSitesResponse converts a slice of domain.Site to ListSitesResponse DTO
func ToListSitesResponse(sites []domain.Site, setupRequired bool) ListSitesResponse {
	res := make([]SiteResponse, len(sites))
	for i, site := range sites {
		res[i] = ToSiteResponse(&site)
	}
	return ListSitesResponse{
		Sites:         res,
		SetupRequired: setupRequired,
	}
}
