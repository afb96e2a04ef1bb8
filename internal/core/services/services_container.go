package services

import (
	"time"

	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
)

// NewServiceContainer wires the full service graph. The derivation services
// build on each other in pipeline order: ledger feeds reporting, reporting
// feeds statements, statements feed the close. A nil cache disables report
// caching entirely.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cache portsrepo.ReportCache, cacheTTL time.Duration) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.OpeningBalance = NewOpeningBalanceService(repos.AccountRepo, repos.OBRepo)
	container.Journal = NewJournalService(repos.JournalRepo)

	container.Ledger = NewLedgerService(repos.AccountRepo, repos.OBRepo, repos.JournalRepo)

	var reportingOpts []ReportingServiceOption
	var statementOpts []StatementServiceOption
	var closingOpts []ClosingServiceOption
	if cache != nil {
		reportingOpts = append(reportingOpts, WithReportingCache(cache, cacheTTL))
		statementOpts = append(statementOpts, WithStatementCache(cache, cacheTTL))
		closingOpts = append(closingOpts, WithClosingCache(cache, cacheTTL))
	}

	container.Reporting = NewReportingService(repos.AccountRepo, repos.JournalRepo, container.Ledger, reportingOpts...)
	container.Statement = NewStatementService(repos.AccountRepo, repos.OBRepo, repos.JournalRepo, container.Reporting, statementOpts...)
	container.Closing = NewClosingService(repos.AccountRepo, container.Reporting, container.Statement, closingOpts...)

	return container
}
