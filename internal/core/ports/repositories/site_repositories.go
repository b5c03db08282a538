package repositories

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// SiteRepository persists construction sites, scoped by owner. DeleteSite
// removes only the site row: transactions referencing the site by name are
// left untouched (soft reference).
type SiteRepository interface {
	SaveSite(ctx context.Context, site domain.Site) error
	FindSiteByID(ctx context.Context, ownerID, siteID string) (*domain.Site, error)
	ListSites(ctx context.Context, ownerID string) ([]domain.Site, error)
	DeleteSite(ctx context.Context, ownerID, siteID string) error
}
