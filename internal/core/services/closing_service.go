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

// Income summary is a suspense account that only exists inside the close; it
// is not part of the chart of accounts.
const (
	incomeSummaryCode = "3-9999"
	incomeSummaryName = "Ikhtisar Laba Rugi"
)

// closingService derives the period-end closing journal and the post-closing
// trial balance.
type closingService struct {
	accountRepo  portsrepo.AccountRepository
	reportingSvc portssvc.ReportingSvc
	statementSvc portssvc.StatementSvc
	cache        portsrepo.ReportCache
	cacheTTL     time.Duration
}

// ClosingServiceOption is a functional option for configuring the closing service.
type ClosingServiceOption func(*closingService)

// WithClosingCache enables the read-through report cache.
func WithClosingCache(cache portsrepo.ReportCache, ttl time.Duration) ClosingServiceOption {
	return func(s *closingService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// NewClosingService creates a new ClosingSvc.
func NewClosingService(accountRepo portsrepo.AccountRepository, reportingSvc portssvc.ReportingSvc, statementSvc portssvc.StatementSvc, options ...ClosingServiceOption) portssvc.ClosingSvc {
	svc := &closingService{
		accountRepo:  accountRepo,
		reportingSvc: reportingSvc,
		statementSvc: statementSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ClosingSvc = (*closingService)(nil)

// equityTarget picks the capital account the close lands in: the lowest-coded
// equity account that is not a drawings account.
func (s *closingService) equityTarget(ctx context.Context) domain.Account {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch accounts for closing target", slog.String("error", err.Error()))
		accounts = nil
	}
	var candidates []domain.Account
	for _, acc := range accounts {
		if acc.Type == domain.Equity && !accounting.IsDrawingsAccount(acc) {
			candidates = append(candidates, acc)
		}
	}
	if len(candidates) == 0 {
		return domain.Account{Code: "3-1100", Name: "Modal", Type: domain.Equity}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Code < candidates[j].Code })
	return candidates[0]
}

// ComputeClosingEntries produces the standard three-step close: revenue into
// income summary, expenses into income summary, income summary into equity.
func (s *closingService) ComputeClosingEntries(ctx context.Context, period domain.Period) (*domain.ClosingEntries, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "closing-entries:"+period.String(), func() (*domain.ClosingEntries, error) {
		return s.computeClosingEntries(ctx, period)
	})
}

func (s *closingService) computeClosingEntries(ctx context.Context, period domain.Period) (*domain.ClosingEntries, error) {
	ws, err := s.reportingSvc.ComputeWorksheet(ctx, period)
	if err != nil {
		return nil, err
	}

	ce := &domain.ClosingEntries{Period: period.String()}
	addEntry := func(code, name string, side domain.EntrySide, amount decimal.Decimal) {
		ce.Entries = append(ce.Entries, domain.ClosingEntry{
			AccountCode: code,
			AccountName: name,
			Side:        side,
			Amount:      amount,
		})
		if side == domain.Debit {
			ce.TotalDebit = ce.TotalDebit.Add(amount)
		} else {
			ce.TotalCredit = ce.TotalCredit.Add(amount)
		}
	}

	// Step 1: debit each revenue account with a credit balance, one combined
	// credit to income summary.
	revenueTotal := decimal.Zero
	for _, row := range ws.Rows {
		credit := row.IncomeStmt.Credit.Sub(row.IncomeStmt.Debit)
		if credit.IsPositive() {
			addEntry(row.AccountCode, row.AccountName, domain.Debit, credit)
			revenueTotal = revenueTotal.Add(credit)
		}
	}
	if revenueTotal.IsPositive() {
		addEntry(incomeSummaryCode, incomeSummaryName, domain.Credit, revenueTotal)
	}

	// Step 2: credit each expense/COGS account with a debit balance, one
	// combined debit to income summary.
	expenseTotal := decimal.Zero
	for _, row := range ws.Rows {
		debit := row.IncomeStmt.Debit.Sub(row.IncomeStmt.Credit)
		if debit.IsPositive() {
			expenseTotal = expenseTotal.Add(debit)
		}
	}
	if expenseTotal.IsPositive() {
		addEntry(incomeSummaryCode, incomeSummaryName, domain.Debit, expenseTotal)
		for _, row := range ws.Rows {
			debit := row.IncomeStmt.Debit.Sub(row.IncomeStmt.Credit)
			if debit.IsPositive() {
				addEntry(row.AccountCode, row.AccountName, domain.Credit, debit)
			}
		}
	}

	// Step 3: close income summary's net balance into equity.
	net := revenueTotal.Sub(expenseTotal)
	if !net.IsZero() {
		equity := s.equityTarget(ctx)
		if net.IsPositive() {
			addEntry(incomeSummaryCode, incomeSummaryName, domain.Debit, net)
			addEntry(equity.Code, equity.Name, domain.Credit, net)
		} else {
			addEntry(equity.Code, equity.Name, domain.Debit, net.Abs())
			addEntry(incomeSummaryCode, incomeSummaryName, domain.Credit, net.Abs())
		}
	}

	ce.IsBalanced = ce.TotalDebit.Equal(ce.TotalCredit)
	return ce, nil
}

// ComputePostClosingTrialBalance re-derives the trial balance from the
// worksheet's balance sheet columns after the close: nominal accounts are
// gone, the equity credit is overridden by the equity statement's ending
// balance, and accumulated depreciation keeps its credit position through
// the asset sign-correction pass.
func (s *closingService) ComputePostClosingTrialBalance(ctx context.Context, period domain.Period) (*domain.PostClosingTrialBalance, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "post-closing-trial-balance:"+period.String(), func() (*domain.PostClosingTrialBalance, error) {
		return s.computePostClosingTrialBalance(ctx, period)
	})
}

func (s *closingService) computePostClosingTrialBalance(ctx context.Context, period domain.Period) (*domain.PostClosingTrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ws, err := s.reportingSvc.ComputeWorksheet(ctx, period)
	if err != nil {
		return nil, err
	}
	es, err := s.statementSvc.ComputeEquityStatement(ctx, period)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to fetch accounts for post-closing trial balance", slog.String("error", err.Error()), slog.String("period", period.String()))
		accounts = nil
	}
	accountsByCode := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsByCode[acc.Code] = acc
	}

	equityTarget := s.equityTarget(ctx)
	pct := &domain.PostClosingTrialBalance{Period: period.String()}

	for _, row := range ws.Rows {
		if row.AccountType.IsNominal() {
			continue
		}
		debit := row.BalanceSheet.Debit
		credit := row.BalanceSheet.Credit
		if debit.IsZero() && credit.IsZero() {
			continue
		}

		acc := lookupAccount(accountsByCode, row.AccountCode, row.AccountName, row.AccountType)

		// Every equity account (capital, drawings, additional investment) is
		// collapsed into the single ending-equity row appended below.
		if acc.Type == domain.Equity {
			continue
		}

		if acc.Type.IsAsset() && credit.IsPositive() && !accounting.IsAccumulatedDepreciation(acc) {
			// Sign-correction: an asset account with a stray credit balance
			// flips into the debit column. Contra-asset accounts are exempt
			// and keep their credit position verbatim.
			debit = credit
			credit = decimal.Zero
		}

		pct.Rows = append(pct.Rows, domain.TrialBalanceRow{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       debit,
			Credit:      credit,
		})
	}

	// Single source of truth for the final equity figure: the equity
	// statement's ending balance.
	if !es.EndingEquity.IsZero() {
		pct.Rows = append(pct.Rows, domain.TrialBalanceRow{
			AccountCode: equityTarget.Code,
			AccountName: equityTarget.Name,
			AccountType: domain.Equity,
			Credit:      es.EndingEquity,
		})
	}

	sort.Slice(pct.Rows, func(i, j int) bool { return pct.Rows[i].AccountCode < pct.Rows[j].AccountCode })

	for _, row := range pct.Rows {
		pct.TotalDebit = pct.TotalDebit.Add(row.Debit)
		pct.TotalCredit = pct.TotalCredit.Add(row.Credit)
	}
	pct.Difference = pct.TotalDebit.Sub(pct.TotalCredit).Abs()
	pct.IsBalanced = pct.Difference.LessThanOrEqual(balanceSheetTolerance)
	if !pct.IsBalanced {
		logger.Warn("Post-closing trial balance is unbalanced",
			slog.String("period", period.String()),
			slog.String("difference", pct.Difference.String()))
	}
	return pct, nil
}
