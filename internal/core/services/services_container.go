package services

import (
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Site = NewSiteService(repos.SiteRepo)
	container.Person = NewPersonService(repos.PersonRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Preference = NewPreferenceService(repos.PreferenceRepo)

	// Reporting folds over raw repository reads; it does not go through the
	// entity services.
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.SiteRepo)

	// Imports reuse the entity services so file rows face the same validation
	// as API requests.
	container.Spreadsheet = NewSpreadsheetService(container.Transaction, container.Site, container.Person)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
