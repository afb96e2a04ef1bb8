package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/core/services"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasPostings(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// --- Mock OpeningBalanceRepository ---

type MockOpeningBalanceRepository struct {
	mock.Mock
}

func (m *MockOpeningBalanceRepository) UpsertOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	args := m.Called(ctx, ob)
	return args.Error(0)
}

func (m *MockOpeningBalanceRepository) ListOpeningBalances(ctx context.Context) ([]domain.OpeningBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceRepository) DeleteOpeningBalance(ctx context.Context, accountCode string) error {
	args := m.Called(ctx, accountCode)
	return args.Error(0)
}

var _ portsrepo.OpeningBalanceRepository = (*MockOpeningBalanceRepository)(nil)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) ListTransactionsPaged(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockJournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveTransactionEntries(ctx context.Context, transactionID string, entries []domain.JournalEntry) error {
	args := m.Called(ctx, transactionID, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockJournalRepository) ListAdjustingJournals(ctx context.Context, period string) ([]domain.AdjustingJournal, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustingJournal), args.Error(1)
}

func (m *MockJournalRepository) SaveAdjustingJournal(ctx context.Context, journal domain.AdjustingJournal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveAdjustingJournalEntries(ctx context.Context, journalID string, entries []domain.JournalEntry) error {
	args := m.Called(ctx, journalID, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteAdjustingJournal(ctx context.Context, journalID string) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

// --- Fixture helpers ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(code string, side domain.EntrySide, amount string) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     uuid.NewString(),
		AccountCode: code,
		Side:        side,
		Amount:      dec(amount),
	}
}

func txn(date time.Time, description string, entries ...domain.JournalEntry) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Number:        "JNL-TEST",
		Date:          date,
		Description:   description,
		Entries:       entries,
		CreatedAt:     date,
	}
}

// testAccounts is a small Indonesian chart of accounts covering every account
// type the derivation pipeline distinguishes.
func testAccounts() []domain.Account {
	return []domain.Account{
		{Code: "1-1100", Name: "Kas", Type: domain.CurrentAsset, Category: "Aktiva Lancar"},
		{Code: "1-1400", Name: "Persediaan Barang Dagang", Type: domain.CurrentAsset, Category: "Aktiva Lancar"},
		{Code: "1-2100", Name: "Peralatan", Type: domain.FixedAsset, Category: "Aktiva Tetap"},
		{Code: "1-2110", Name: "Akumulasi Penyusutan Peralatan", Type: domain.FixedAsset, Category: "Aktiva Tetap"},
		{Code: "2-1100", Name: "Utang Usaha", Type: domain.Liability, Category: "Kewajiban"},
		{Code: "3-1100", Name: "Modal", Type: domain.Equity, Category: "Ekuitas"},
		{Code: "3-1200", Name: "Prive", Type: domain.Equity, Category: "Ekuitas"},
		{Code: "4-1100", Name: "Penjualan", Type: domain.Revenue, Category: "Pendapatan"},
		{Code: "5-1100", Name: "Harga Pokok Penjualan", Type: domain.COGS, Category: "HPP"},
		{Code: "6-1100", Name: "Beban Gaji", Type: domain.Expense, Category: "Beban"},
		{Code: "6-1400", Name: "Beban Penyusutan Peralatan", Type: domain.Expense, Category: "Beban"},
	}
}

// pipelineFixture wires the real derivation service chain over mocked stores.
type pipelineFixture struct {
	accountRepo *MockAccountRepository
	obRepo      *MockOpeningBalanceRepository
	journalRepo *MockJournalRepository
	ledger      portssvc.LedgerSvc
	reporting   portssvc.ReportingSvc
	statement   portssvc.StatementSvc
	closing     portssvc.ClosingSvc
}

func newPipelineFixture(accounts []domain.Account, openings []domain.OpeningBalance, transactions []domain.Transaction, adjustments []domain.AdjustingJournal) *pipelineFixture {
	f := &pipelineFixture{
		accountRepo: new(MockAccountRepository),
		obRepo:      new(MockOpeningBalanceRepository),
		journalRepo: new(MockJournalRepository),
	}
	f.accountRepo.On("ListAccounts", mock.Anything).Return(accounts, nil)
	for i := range accounts {
		acc := accounts[i]
		f.accountRepo.On("FindAccountByCode", mock.Anything, acc.Code).Return(&acc, nil).Maybe()
	}
	f.accountRepo.On("FindAccountByCode", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()
	f.obRepo.On("ListOpeningBalances", mock.Anything).Return(openings, nil)
	f.journalRepo.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).Return(transactions, nil)
	f.journalRepo.On("ListAdjustingJournals", mock.Anything, mock.Anything).Return(adjustments, nil)

	f.ledger = services.NewLedgerService(f.accountRepo, f.obRepo, f.journalRepo)
	f.reporting = services.NewReportingService(f.accountRepo, f.journalRepo, f.ledger)
	f.statement = services.NewStatementService(f.accountRepo, f.obRepo, f.journalRepo, f.reporting)
	f.closing = services.NewClosingService(f.accountRepo, f.reporting, f.statement)
	return f
}
