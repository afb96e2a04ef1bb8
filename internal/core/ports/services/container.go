package services

// ServiceContainer holds all initialized services for handler wiring.
type ServiceContainer struct {
	Account        AccountSvc
	OpeningBalance OpeningBalanceSvc
	Journal        JournalSvc
	Ledger         LedgerSvc
	Reporting      ReportingSvc
	Statement      StatementSvc
	Closing        ClosingSvc
}
