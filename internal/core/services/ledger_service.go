package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/middleware"
	"github.com/wiradata/bukubesar_app/internal/utils/accounting"
)

// ledgerService aggregates opening balances and postings into per-account
// general ledgers. Aggregation is best-effort: malformed postings are skipped
// and collected, store failures degrade to an empty report.
type ledgerService struct {
	accountRepo portsrepo.AccountRepository
	obRepo      portsrepo.OpeningBalanceRepository
	journalRepo portsrepo.JournalRepository
}

// NewLedgerService creates a new LedgerSvc.
func NewLedgerService(accountRepo portsrepo.AccountRepository, obRepo portsrepo.OpeningBalanceRepository, journalRepo portsrepo.JournalRepository) portssvc.LedgerSvc {
	return &ledgerService{
		accountRepo: accountRepo,
		obRepo:      obRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// ComputeLedger builds the general ledger for the period's full month,
// optionally restricted to a single account code.
func (s *ledgerService) ComputeLedger(ctx context.Context, period domain.Period, accountFilter string) (*domain.LedgerReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	empty := &domain.LedgerReport{Period: period.String(), Accounts: []domain.AccountBalance{}}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to fetch accounts for ledger, returning empty report", slog.String("error", err.Error()), slog.String("period", period.String()))
		return empty, nil
	}

	openings, err := s.obRepo.ListOpeningBalances(ctx)
	if err != nil {
		logger.Error("Failed to fetch opening balances for ledger, returning empty report", slog.String("error", err.Error()), slog.String("period", period.String()))
		return empty, nil
	}

	start := period.Start()
	end := period.End()
	transactions, err := s.journalRepo.ListTransactions(ctx, &start, &end)
	if err != nil {
		logger.Error("Failed to fetch transactions for ledger, returning empty report", slog.String("error", err.Error()), slog.String("period", period.String()))
		return empty, nil
	}

	report := aggregateLedger(period, accounts, openings, transactions, accountFilter)
	if len(report.Skipped) > 0 {
		logger.Warn("Ledger aggregation skipped malformed postings", slog.Int("skipped", len(report.Skipped)), slog.String("period", period.String()))
	}
	return report, nil
}

// aggregateLedger is the pure aggregation core.
func aggregateLedger(period domain.Period, accounts []domain.Account, openings []domain.OpeningBalance, transactions []domain.Transaction, accountFilter string) *domain.LedgerReport {
	balances := make(map[string]*domain.AccountBalance)
	hasOpening := make(map[string]bool)

	accountsByCode := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsByCode[acc.Code] = acc
	}

	openingsByCode := make(map[string]domain.OpeningBalance, len(openings))
	for _, ob := range openings {
		// One opening balance per account; the store's upsert already
		// guarantees this, last one wins otherwise.
		openingsByCode[ob.AccountCode] = ob
	}

	ensure := func(code string) *domain.AccountBalance {
		if b, ok := balances[code]; ok {
			return b
		}
		acc, ok := accountsByCode[code]
		if !ok {
			// An account referenced by a posting but absent from the chart of
			// accounts must not abort the whole report.
			acc = domain.Account{Code: code, Name: "Unknown", Type: domain.OtherAsset, Category: "Unknown"}
		}
		b := &domain.AccountBalance{Account: acc}
		if ob, found := openingsByCode[code]; found {
			b.InitialBalance = accounting.SignedOpening(acc.Type, ob)
			hasOpening[code] = true
		}
		b.Entries = append(b.Entries, domain.LedgerLine{
			Description:      "Saldo Awal",
			RunningBalance:   b.InitialBalance,
			IsOpeningBalance: true,
		})
		balances[code] = b
		return b
	}

	// Seed every chart-of-accounts entry, opening balance or not.
	for _, acc := range accounts {
		ensure(acc.Code)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].CreatedAt.Before(transactions[j].CreatedAt)
		}
		return transactions[i].Date.Before(transactions[j].Date)
	})

	var skipped []domain.SkippedPosting
	for _, txn := range transactions {
		for _, entry := range txn.Entries {
			if entry.AccountCode == "" {
				skipped = append(skipped, domain.SkippedPosting{
					TransactionNumber: txn.Number,
					Reason:            "missing account code",
				})
				continue
			}
			if entry.Amount.LessThanOrEqual(decimal.Zero) {
				skipped = append(skipped, domain.SkippedPosting{
					TransactionNumber: txn.Number,
					AccountCode:       entry.AccountCode,
					Reason:            "non-positive amount",
				})
				continue
			}

			b := ensure(entry.AccountCode)
			line := domain.LedgerLine{
				Date:        txn.Date,
				Description: txn.Description,
			}
			if entry.Side == domain.Debit {
				line.Debit = entry.Amount
				b.TotalDebit = b.TotalDebit.Add(entry.Amount)
			} else {
				line.Credit = entry.Amount
				b.TotalCredit = b.TotalCredit.Add(entry.Amount)
			}
			b.Entries = append(b.Entries, line)
		}
	}

	result := make([]domain.AccountBalance, 0, len(balances))
	for code, b := range balances {
		// Accounts with no activity and no opening balance are dropped.
		if !hasOpening[code] && b.TotalDebit.IsZero() && b.TotalCredit.IsZero() {
			continue
		}
		if accountFilter != "" && code != accountFilter {
			continue
		}

		b.FinalBalance = accounting.FinalBalance(b.Account.Type, b.InitialBalance, b.TotalDebit, b.TotalCredit)

		// Re-walk chronologically (opening line first) applying the same
		// per-line signed delta to set running balances.
		running := b.InitialBalance
		for i := range b.Entries {
			if b.Entries[i].IsOpeningBalance {
				b.Entries[i].RunningBalance = running
				continue
			}
			side := domain.Credit
			amount := b.Entries[i].Credit
			if !b.Entries[i].Debit.IsZero() {
				side = domain.Debit
				amount = b.Entries[i].Debit
			}
			running = running.Add(accounting.SignedDelta(b.Account.Type, side, amount))
			b.Entries[i].RunningBalance = running
		}

		result = append(result, *b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Account.Code < result[j].Account.Code
	})

	return &domain.LedgerReport{
		Period:   period.String(),
		Accounts: result,
		Skipped:  skipped,
	}
}
