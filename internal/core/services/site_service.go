package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// siteService implements the SiteSvcFacade interface
type siteService struct {
	BaseService
	siteRepo portsrepo.SiteRepository
}

// NewSiteService creates a new site service
func NewSiteService(repo portsrepo.SiteRepository) portssvc.SiteSvcFacade {
	return &siteService{siteRepo: repo}
}

// Ensure siteService implements the SiteSvcFacade interface
var _ portssvc.SiteSvcFacade = (*siteService)(nil)

func (s *siteService) CreateSite(ctx context.Context, userID string, req dto.CreateSiteRequest) (*domain.Site, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: site name must not be empty", apperrors.ErrValidation)
	}
	if name == domain.UncategorizedLabel {
		return nil, fmt.Errorf("%w: %q is a reserved name", apperrors.ErrValidation, domain.UncategorizedLabel)
	}
	// A zero budget would make every used-percentage computation meaningless.
	if !req.Budget.IsPositive() {
		return nil, fmt.Errorf("%w: budget must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	site := domain.Site{
		SiteID:      uuid.NewString(),
		OwnerID:     userID,
		Name:        name,
		Budget:      req.Budget,
		CreatedDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.siteRepo.SaveSite(ctx, site); err != nil {
		s.LogError(ctx, err, "Failed to save site", slog.String("site_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Site created", slog.String("site_id", site.SiteID), slog.String("site_name", name))
	return &site, nil
}

func (s *siteService) GetSiteByID(ctx context.Context, userID string, siteID string) (*domain.Site, error) {
	return s.siteRepo.FindSiteByID(ctx, userID, siteID)
}

func (s *siteService) ListSites(ctx context.Context, userID string) ([]domain.Site, error) {
	return s.siteRepo.ListSites(ctx, userID)
}

func (s *siteService) DeleteSite(ctx context.Context, userID string, siteID string) error {
	// Transactions attributed to this site are deliberately left alone; they
	// keep their site tag and simply stop appearing in site reports.
	if err := s.siteRepo.DeleteSite(ctx, userID, siteID); err != nil {
		s.LogError(ctx, err, "Failed to delete site", slog.String("site_id", siteID))
		return err
	}
	s.LogInfo(ctx, "Site deleted", slog.String("site_id", siteID))
	return nil
}
