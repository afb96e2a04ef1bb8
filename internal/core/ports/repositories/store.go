package repositories

import (
	"context"
	"time"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate when
	// the code is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByCode retrieves a single account by its code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the full chart of accounts sorted by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// HasPostings reports whether any journal entry (general or adjusting)
	// references the account code.
	HasPostings(ctx context.Context, code string) (bool, error)

	// DeleteAccount removes an account by code.
	DeleteAccount(ctx context.Context, code string) error
}

// OpeningBalanceRepository defines persistence for per-account opening balances.
type OpeningBalanceRepository interface {
	// UpsertOpeningBalance inserts the opening balance for an account,
	// overwriting a previous one for the same code. Overwrite-on-conflict is
	// contract, not accident.
	UpsertOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error

	// ListOpeningBalances retrieves all opening balances.
	ListOpeningBalances(ctx context.Context) ([]domain.OpeningBalance, error)

	// DeleteOpeningBalance removes the opening balance for an account code.
	DeleteOpeningBalance(ctx context.Context, accountCode string) error
}

// TransactionReader defines read operations for general journal transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction with its entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions with entries whose date falls
	// in [start, end] inclusive, in date order. Nil bounds are unrestricted.
	ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error)

	// ListTransactionsPaged retrieves a page of transactions (newest first)
	// using token-based pagination. It returns the transactions, a token for
	// the next page, and an error.
	ListTransactionsPaged(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for general journal transactions.
// Parent and entries are written separately so the service can run a
// compensating parent delete when entry insertion fails; the store is not
// assumed to provide multi-statement transactions.
type TransactionWriter interface {
	// SaveTransaction persists the transaction header only.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactionEntries persists the entries of a transaction.
	SaveTransactionEntries(ctx context.Context, transactionID string, entries []domain.JournalEntry) error

	// DeleteTransaction removes a transaction and cascades to its entries.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// AdjustingJournalRepository defines persistence for adjusting journals.
type AdjustingJournalRepository interface {
	// ListAdjustingJournals retrieves adjusting journals with entries,
	// optionally filtered to one period ("YYYY-MM"; empty for all).
	ListAdjustingJournals(ctx context.Context, period string) ([]domain.AdjustingJournal, error)

	// SaveAdjustingJournal persists the adjusting journal header only.
	SaveAdjustingJournal(ctx context.Context, journal domain.AdjustingJournal) error

	// SaveAdjustingJournalEntries persists the entries of an adjusting journal.
	SaveAdjustingJournalEntries(ctx context.Context, journalID string, entries []domain.JournalEntry) error

	// DeleteAdjustingJournal removes an adjusting journal and its entries.
	DeleteAdjustingJournal(ctx context.Context, journalID string) error
}

// JournalRepository combines transaction and adjusting journal persistence.
type JournalRepository interface {
	TransactionReader
	TransactionWriter
	AdjustingJournalRepository
}

// PostingStore is the complete store contract the derivation engine consumes.
type PostingStore interface {
	AccountRepository
	OpeningBalanceRepository
	JournalRepository
}
