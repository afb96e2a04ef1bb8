package services

import (
	"context"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	"github.com/wiradata/bukubesar_app/internal/dto"
)

// AccountSvc manages the chart of accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// DeleteAccount refuses with apperrors.ErrConflict while postings
	// reference the account.
	DeleteAccount(ctx context.Context, code string) error
}

// OpeningBalanceSvc manages per-account opening balances.
type OpeningBalanceSvc interface {
	// UpsertOpeningBalance overwrites any earlier opening balance for the
	// same account code.
	UpsertOpeningBalance(ctx context.Context, req dto.UpsertOpeningBalanceRequest) (*domain.OpeningBalance, error)
	ListOpeningBalances(ctx context.Context) ([]domain.OpeningBalance, error)
	DeleteOpeningBalance(ctx context.Context, accountCode string) error
}

// JournalSvc manages general journal transactions and adjusting journals.
type JournalSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	DeleteTransaction(ctx context.Context, transactionID string) error

	CreateAdjustingJournal(ctx context.Context, req dto.CreateAdjustingJournalRequest) (*domain.AdjustingJournal, error)
	ListAdjustingJournals(ctx context.Context, period string) ([]domain.AdjustingJournal, error)
	DeleteAdjustingJournal(ctx context.Context, journalID string) error
}

// LedgerSvc aggregates postings into per-account ledgers.
type LedgerSvc interface {
	// ComputeLedger builds the general ledger for a period, optionally
	// restricted to one account code.
	ComputeLedger(ctx context.Context, period domain.Period, accountFilter string) (*domain.LedgerReport, error)
}

// ReportingSvc derives the trial balances and the worksheet.
//
// All Compute methods share the recovery policy of the derivation pipeline:
// on store failure they log and return a valid empty report shape, and an
// unbalanced result is reported through the report's IsBalanced flag rather
// than an error.
type ReportingSvc interface {
	ComputeTrialBalance(ctx context.Context, period domain.Period) (*domain.TrialBalance, error)
	ComputeAdjustedTrialBalance(ctx context.Context, period domain.Period) (*domain.AdjustedTrialBalance, error)
	ComputeWorksheet(ctx context.Context, period domain.Period) (*domain.Worksheet, error)
}

// StatementSvc derives the four financial statements.
type StatementSvc interface {
	ComputeIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error)
	ComputeEquityStatement(ctx context.Context, period domain.Period) (*domain.EquityStatement, error)
	ComputeBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
	ComputeCashFlow(ctx context.Context, period domain.Period) (*domain.CashFlowStatement, error)
}

// ClosingSvc derives the period-end close.
type ClosingSvc interface {
	ComputeClosingEntries(ctx context.Context, period domain.Period) (*domain.ClosingEntries, error)
	ComputePostClosingTrialBalance(ctx context.Context, period domain.Period) (*domain.PostClosingTrialBalance, error)
}
