package services

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// SiteReaderSvc defines read operations for site data
type SiteReaderSvc interface {
	GetSiteByID(ctx context.Context, userID string, siteID string) (*domain.Site, error)
	ListSites(ctx context.Context, userID string) ([]domain.Site, error)
}

// SiteWriterSvc defines write operations for site data
type SiteWriterSvc interface {
	// CreateSite persists a new site. The budget must be strictly positive.
	CreateSite(ctx context.Context, userID string, req dto.CreateSiteRequest) (*domain.Site, error)

	// DeleteSite removes the site row only. Transactions attributed to the
	// site keep their attribution and fall out of site reports.
	DeleteSite(ctx context.Context, userID string, siteID string) error
}

// SiteSvcFacade combines all site-related service interfaces
type SiteSvcFacade interface {
	SiteReaderSvc
	SiteWriterSvc
}
