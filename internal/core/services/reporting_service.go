package services

import (
	"context"
	"errors"

	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/core/ledger"
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// reportingService implements the ReportingSvcFacade interface.
// Reports are folds over the owner's full transaction collection, computed on
// every request.
type reportingService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepository
	siteRepo portsrepo.SiteRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(txnRepo portsrepo.TransactionRepository, siteRepo portsrepo.SiteRepository) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo, siteRepo: siteRepo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadTransactions fetches the owner's ledger, translating an unprovisioned
// schema into an empty collection with setupRequired set. That state is logged
// at debug level only; it is expected on fresh deployments and would flood
// error logs otherwise.
func (s *reportingService) loadTransactions(ctx context.Context, userID string) ([]domain.Transaction, bool, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBackendNotReady) {
			s.LogDebug(ctx, "Schema not provisioned, returning empty report")
			return nil, true, nil
		}
		return nil, false, err
	}
	return txns, false, nil
}

func (s *reportingService) GetBalanceReport(ctx context.Context, userID string) (*dto.BalanceReport, error) {
	txns, setupRequired, err := s.loadTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for balance report")
		return nil, err
	}
	return &dto.BalanceReport{
		Totals:        dto.ToTotalsResponse(ledger.GlobalTotals(txns)),
		SetupRequired: setupRequired,
	}, nil
}

func (s *reportingService) GetPeopleReport(ctx context.Context, userID string, query string) (*dto.PeopleReport, error) {
	txns, setupRequired, err := s.loadTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for people report")
		return nil, err
	}

	matched := ledger.FilterByName(txns, query)
	summaries := ledger.SummarizeByPerson(matched)
	ledger.SortByMagnitude(summaries)

	return s.buildPeopleReport(summaries, matched, setupRequired), nil
}

func (s *reportingService) GetSupplierReport(ctx context.Context, userID string, query string) (*dto.PeopleReport, error) {
	txns, setupRequired, err := s.loadTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for supplier report")
		return nil, err
	}

	matched := ledger.FilterByName(txns, query)
	summaries := ledger.SummarizeSuppliers(matched)
	ledger.SortByMagnitude(summaries)

	return s.buildPeopleReport(summaries, matched, setupRequired), nil
}

func (s *reportingService) buildPeopleReport(summaries []ledger.PersonSummary, matched []domain.Transaction, setupRequired bool) *dto.PeopleReport {
	people := make([]dto.PersonSummaryResponse, len(summaries))
	for i, summary := range summaries {
		people[i] = dto.ToPersonSummaryResponse(summary)
	}
	return &dto.PeopleReport{
		People:        people,
		Search:        dto.ToTotalsResponse(ledger.GlobalTotals(matched)),
		SetupRequired: setupRequired,
	}
}

func (s *reportingService) GetSiteReport(ctx context.Context, userID string) (*dto.SiteReport, error) {
	txns, setupRequired, err := s.loadTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for site report")
		return nil, err
	}

	var sites []domain.Site
	if !setupRequired {
		sites, err = s.siteRepo.ListSites(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrBackendNotReady) {
				setupRequired = true
			} else {
				s.LogError(ctx, err, "Failed to load sites for site report")
				return nil, err
			}
		}
	}

	siteSummaries := make([]dto.SiteSummaryResponse, len(sites))
	for i, site := range sites {
		siteSummaries[i] = dto.ToSiteSummaryResponse(ledger.SummarizeSite(site, txns))
	}

	uncategorized := ledger.SummarizeUncategorized(txns)

	return &dto.SiteReport{
		Sites: siteSummaries,
		Uncategorized: dto.UncategorizedResponse{
			Count: uncategorized.Count,
			Total: uncategorized.Total,
		},
		SetupRequired: setupRequired,
	}, nil
}

func (s *reportingService) GetSiteSummary(ctx context.Context, userID string, siteID string) (*dto.SiteSummaryResponse, error) {
	site, err := s.siteRepo.FindSiteByID(ctx, userID, siteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBackendNotReady) {
			// No schema means no sites exist yet.
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to load site for summary")
		return nil, err
	}

	txns, _, err := s.loadTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for site summary")
		return nil, err
	}

	summary := dto.ToSiteSummaryResponse(ledger.SummarizeSite(*site, txns))
	return &summary, nil
}
