package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		OBRepo:      newPgxOpeningBalanceRepository(dbPool),
		JournalRepo: newPgxJournalRepository(dbPool),
	}
}
