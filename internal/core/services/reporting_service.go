package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/middleware"
	"github.com/wiradata/bukubesar_app/internal/utils/accounting"
)

// reportingService derives the trial balances and the worksheet from the
// ledger aggregator output. Every stage applies the one shared sign
// convention from the accounting package; divergence between stages is the
// highest-risk bug class in this system.
type reportingService struct {
	accountRepo portsrepo.AccountRepository
	journalRepo portsrepo.JournalRepository
	ledgerSvc   portssvc.LedgerSvc
	cache       portsrepo.ReportCache
	cacheTTL    time.Duration
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingCache enables the read-through report cache.
func WithReportingCache(cache portsrepo.ReportCache, ttl time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// NewReportingService creates a new ReportingSvc.
func NewReportingService(accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository, ledgerSvc portssvc.LedgerSvc, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		ledgerSvc:   ledgerSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// ComputeTrialBalance derives the pre-adjustment trial balance for a period.
// When no ledger data exists it returns every chart-of-accounts entry with
// zero balances so downstream reports always have a complete account universe.
func (s *reportingService) ComputeTrialBalance(ctx context.Context, period domain.Period) (*domain.TrialBalance, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "trial-balance:"+period.String(), func() (*domain.TrialBalance, error) {
		return s.computeTrialBalance(ctx, period)
	})
}

func (s *reportingService) computeTrialBalance(ctx context.Context, period domain.Period) (*domain.TrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ledger, err := s.ledgerSvc.ComputeLedger(ctx, period, "")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(ledger.Accounts))
	for _, ab := range ledger.Accounts {
		debit, credit := accounting.SplitBalance(ab.Account.Type, ab.FinalBalance)
		rows = append(rows, domain.TrialBalanceRow{
			AccountCode: ab.Account.Code,
			AccountName: ab.Account.Name,
			AccountType: ab.Account.Type,
			Debit:       debit,
			Credit:      credit,
		})
	}

	if len(rows) == 0 {
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			logger.Error("Failed to fetch accounts for empty trial balance", slog.String("error", err.Error()), slog.String("period", period.String()))
			accounts = nil
		}
		for _, acc := range accounts {
			rows = append(rows, domain.TrialBalanceRow{
				AccountCode: acc.Code,
				AccountName: acc.Name,
				AccountType: acc.Type,
			})
		}
	}

	tb := &domain.TrialBalance{
		Period:  period.String(),
		Rows:    rows,
		Skipped: ledger.Skipped,
	}
	for _, row := range tb.Rows {
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}
	tb.Difference = tb.TotalDebit.Sub(tb.TotalCredit).Abs()
	tb.IsBalanced = tb.Difference.IsZero()

	if !tb.IsBalanced {
		// Still rendered so the user can diagnose the imbalance.
		logger.Warn("Trial balance is unbalanced",
			slog.String("period", period.String()),
			slog.String("difference", tb.Difference.String()))
	}
	return tb, nil
}

// ComputeAdjustedTrialBalance merges the period's adjusting journal postings
// onto the pre-adjustment trial balance.
func (s *reportingService) ComputeAdjustedTrialBalance(ctx context.Context, period domain.Period) (*domain.AdjustedTrialBalance, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "adjusted-trial-balance:"+period.String(), func() (*domain.AdjustedTrialBalance, error) {
		return s.computeAdjustedTrialBalance(ctx, period)
	})
}

func (s *reportingService) computeAdjustedTrialBalance(ctx context.Context, period domain.Period) (*domain.AdjustedTrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	before, err := s.ComputeTrialBalance(ctx, period)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.journalRepo.ListAdjustingJournals(ctx, period.String())
	if err != nil {
		logger.Error("Failed to fetch adjusting journals, reporting unadjusted balances", slog.String("error", err.Error()), slog.String("period", period.String()))
		adjustments = nil
	}

	rowsByCode := make(map[string]*domain.AdjustedTrialBalanceRow, len(before.Rows))
	order := make([]string, 0, len(before.Rows))
	for _, row := range before.Rows {
		r := &domain.AdjustedTrialBalanceRow{
			AccountCode:  row.AccountCode,
			AccountName:  row.AccountName,
			AccountType:  row.AccountType,
			DebitBefore:  row.Debit,
			CreditBefore: row.Credit,
		}
		rowsByCode[row.AccountCode] = r
		order = append(order, row.AccountCode)
	}

	for _, adj := range adjustments {
		for _, entry := range adj.Entries {
			if entry.AccountCode == "" || entry.Amount.LessThanOrEqual(decimal.Zero) {
				continue
			}
			row, ok := rowsByCode[entry.AccountCode]
			if !ok {
				// Adjusting entry for an account missing from the before
				// balance: create the row via account lookup.
				row = &domain.AdjustedTrialBalanceRow{AccountCode: entry.AccountCode}
				if acc, ferr := s.accountRepo.FindAccountByCode(ctx, entry.AccountCode); ferr == nil {
					row.AccountName = acc.Name
					row.AccountType = acc.Type
				} else {
					row.AccountName = "Unknown"
					row.AccountType = domain.OtherAsset
				}
				rowsByCode[entry.AccountCode] = row
				order = append(order, entry.AccountCode)
			}
			if entry.Side == domain.Debit {
				row.AdjustmentDebit = row.AdjustmentDebit.Add(entry.Amount)
			} else {
				row.AdjustmentCredit = row.AdjustmentCredit.Add(entry.Amount)
			}
		}
	}

	sort.Strings(order)
	atb := &domain.AdjustedTrialBalance{Period: period.String()}
	for _, code := range order {
		row := rowsByCode[code]
		// Re-net into a single display column. Summing both columns without
		// re-deriving would double-count accounts touched on both sides.
		row.DebitAfter, row.CreditAfter = accounting.NetColumns(row.AccountType,
			row.DebitBefore.Add(row.AdjustmentDebit),
			row.CreditBefore.Add(row.AdjustmentCredit))
		atb.Rows = append(atb.Rows, *row)
		atb.TotalDebit = atb.TotalDebit.Add(row.DebitAfter)
		atb.TotalCredit = atb.TotalCredit.Add(row.CreditAfter)
	}
	atb.Difference = atb.TotalDebit.Sub(atb.TotalCredit).Abs()
	atb.IsBalanced = atb.Difference.IsZero()
	return atb, nil
}

// ComputeWorksheet builds the five-column-pair worksheet and the net income
// plug that forces the income statement and balance sheet pairs to balance
// independently.
func (s *reportingService) ComputeWorksheet(ctx context.Context, period domain.Period) (*domain.Worksheet, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "worksheet:"+period.String(), func() (*domain.Worksheet, error) {
		return s.computeWorksheet(ctx, period)
	})
}

func (s *reportingService) computeWorksheet(ctx context.Context, period domain.Period) (*domain.Worksheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	before, err := s.ComputeTrialBalance(ctx, period)
	if err != nil {
		return nil, err
	}
	adjusted, err := s.ComputeAdjustedTrialBalance(ctx, period)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to fetch accounts for worksheet classification", slog.String("error", err.Error()), slog.String("period", period.String()))
		accounts = nil
	}
	accountsByCode := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsByCode[acc.Code] = acc
	}

	ws := &domain.Worksheet{Period: period.String(), Skipped: before.Skipped}
	for _, row := range adjusted.Rows {
		acc, ok := accountsByCode[row.AccountCode]
		if !ok {
			acc = domain.Account{Code: row.AccountCode, Name: row.AccountName, Type: row.AccountType}
		}

		wr := domain.WorksheetRow{
			AccountCode:  row.AccountCode,
			AccountName:  row.AccountName,
			AccountType:  row.AccountType,
			TrialBalance: domain.WorksheetColumns{Debit: row.DebitBefore, Credit: row.CreditBefore},
			Adjustments:  domain.WorksheetColumns{Debit: row.AdjustmentDebit, Credit: row.AdjustmentCredit},
			Adjusted:     domain.WorksheetColumns{Debit: row.DebitAfter, Credit: row.CreditAfter},
		}
		if accounting.IsIncomeStatementAccount(acc) {
			wr.IncomeStmt = wr.Adjusted
		} else {
			wr.BalanceSheet = wr.Adjusted
		}
		ws.Rows = append(ws.Rows, wr)

		ws.Totals.TrialBalance.Debit = ws.Totals.TrialBalance.Debit.Add(wr.TrialBalance.Debit)
		ws.Totals.TrialBalance.Credit = ws.Totals.TrialBalance.Credit.Add(wr.TrialBalance.Credit)
		ws.Totals.Adjustments.Debit = ws.Totals.Adjustments.Debit.Add(wr.Adjustments.Debit)
		ws.Totals.Adjustments.Credit = ws.Totals.Adjustments.Credit.Add(wr.Adjustments.Credit)
		ws.Totals.Adjusted.Debit = ws.Totals.Adjusted.Debit.Add(wr.Adjusted.Debit)
		ws.Totals.Adjusted.Credit = ws.Totals.Adjusted.Credit.Add(wr.Adjusted.Credit)
		ws.Totals.IncomeStmt.Debit = ws.Totals.IncomeStmt.Debit.Add(wr.IncomeStmt.Debit)
		ws.Totals.IncomeStmt.Credit = ws.Totals.IncomeStmt.Credit.Add(wr.IncomeStmt.Credit)
		ws.Totals.BalanceSheet.Debit = ws.Totals.BalanceSheet.Debit.Add(wr.BalanceSheet.Debit)
		ws.Totals.BalanceSheet.Credit = ws.Totals.BalanceSheet.Credit.Add(wr.BalanceSheet.Credit)
	}

	// Net income plug: profit is debited to the income statement pair and
	// credited to the balance sheet pair; a loss is mirrored.
	net := ws.Totals.IncomeStmt.Credit.Sub(ws.Totals.IncomeStmt.Debit)
	ws.NetIncome = net
	ws.IsProfit = !net.IsNegative()
	if ws.IsProfit {
		ws.Plug.IncomeStmt.Debit = net
		ws.Plug.BalanceSheet.Credit = net
	} else {
		ws.Plug.IncomeStmt.Credit = net.Abs()
		ws.Plug.BalanceSheet.Debit = net.Abs()
	}

	ws.GrandTotals = ws.Totals
	ws.GrandTotals.IncomeStmt.Debit = ws.GrandTotals.IncomeStmt.Debit.Add(ws.Plug.IncomeStmt.Debit)
	ws.GrandTotals.IncomeStmt.Credit = ws.GrandTotals.IncomeStmt.Credit.Add(ws.Plug.IncomeStmt.Credit)
	ws.GrandTotals.BalanceSheet.Debit = ws.GrandTotals.BalanceSheet.Debit.Add(ws.Plug.BalanceSheet.Debit)
	ws.GrandTotals.BalanceSheet.Credit = ws.GrandTotals.BalanceSheet.Credit.Add(ws.Plug.BalanceSheet.Credit)

	ws.IsBalanced = ws.GrandTotals.Adjusted.Debit.Equal(ws.GrandTotals.Adjusted.Credit) &&
		ws.GrandTotals.IncomeStmt.Debit.Equal(ws.GrandTotals.IncomeStmt.Credit) &&
		ws.GrandTotals.BalanceSheet.Debit.Equal(ws.GrandTotals.BalanceSheet.Credit)
	if !ws.IsBalanced {
		logger.Warn("Worksheet is unbalanced", slog.String("period", period.String()))
	}
	return ws, nil
}
