package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	OBRepo      OpeningBalanceRepository
	JournalRepo JournalRepository
}
