package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SiteRepo:        newPgxSiteRepository(dbPool),
		PersonRepo:      newPgxPersonRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		PreferenceRepo:  newPgxPreferenceRepository(dbPool),
	}
}
