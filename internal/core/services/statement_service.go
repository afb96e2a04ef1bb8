package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/middleware"
	"github.com/wiradata/bukubesar_app/internal/utils/accounting"
)

// balanceSheetTolerance absorbs sub-cent noise when comparing statement
// totals.
var balanceSheetTolerance = decimal.RequireFromString("0.01")

// statementService derives the four financial statements from the worksheet
// and trial balance outputs. Net income is computed once in the income
// statement and carried into the equity statement and balance sheet, never
// recomputed.
type statementService struct {
	accountRepo  portsrepo.AccountRepository
	obRepo       portsrepo.OpeningBalanceRepository
	journalRepo  portsrepo.JournalRepository
	reportingSvc portssvc.ReportingSvc
	cache        portsrepo.ReportCache
	cacheTTL     time.Duration
}

// StatementServiceOption is a functional option for configuring the statement service.
type StatementServiceOption func(*statementService)

// WithStatementCache enables the read-through report cache.
func WithStatementCache(cache portsrepo.ReportCache, ttl time.Duration) StatementServiceOption {
	return func(s *statementService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// NewStatementService creates a new StatementSvc.
func NewStatementService(accountRepo portsrepo.AccountRepository, obRepo portsrepo.OpeningBalanceRepository, journalRepo portsrepo.JournalRepository, reportingSvc portssvc.ReportingSvc, options ...StatementServiceOption) portssvc.StatementSvc {
	svc := &statementService{
		accountRepo:  accountRepo,
		obRepo:       obRepo,
		journalRepo:  journalRepo,
		reportingSvc: reportingSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatementSvc = (*statementService)(nil)

func (s *statementService) accountsByCode(ctx context.Context) map[string]domain.Account {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch accounts for statement classification", slog.String("error", err.Error()))
		return map[string]domain.Account{}
	}
	byCode := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byCode[acc.Code] = acc
	}
	return byCode
}

func lookupAccount(byCode map[string]domain.Account, code, name string, accType domain.AccountType) domain.Account {
	if acc, ok := byCode[code]; ok {
		return acc
	}
	return domain.Account{Code: code, Name: name, Type: accType}
}

// ComputeIncomeStatement partitions the worksheet's income statement columns
// into revenue, COGS and operating expense sections.
func (s *statementService) ComputeIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "income-statement:"+period.String(), func() (*domain.IncomeStatement, error) {
		return s.computeIncomeStatement(ctx, period)
	})
}

func (s *statementService) computeIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	ws, err := s.reportingSvc.ComputeWorksheet(ctx, period)
	if err != nil {
		return nil, err
	}
	byCode := s.accountsByCode(ctx)

	is := &domain.IncomeStatement{Period: period.String()}
	for _, row := range ws.Rows {
		if row.IncomeStmt.Debit.IsZero() && row.IncomeStmt.Credit.IsZero() {
			continue
		}
		acc := lookupAccount(byCode, row.AccountCode, row.AccountName, row.AccountType)
		line := domain.StatementLine{AccountCode: row.AccountCode, AccountName: row.AccountName}

		switch accounting.IncomeStatementRole(acc) {
		case domain.RoleRevenue:
			line.Amount = row.IncomeStmt.Credit.Sub(row.IncomeStmt.Debit)
			is.TotalRevenue = is.TotalRevenue.Add(line.Amount)
			if !line.Amount.IsZero() {
				is.Revenue = append(is.Revenue, line)
			}
		case domain.RoleCOGS:
			line.Amount = row.IncomeStmt.Debit.Sub(row.IncomeStmt.Credit)
			is.TotalCOGS = is.TotalCOGS.Add(line.Amount)
			if !line.Amount.IsZero() {
				is.COGS = append(is.COGS, line)
			}
		case domain.RoleExpense:
			line.Amount = row.IncomeStmt.Debit.Sub(row.IncomeStmt.Credit)
			is.TotalExpense = is.TotalExpense.Add(line.Amount)
			if !line.Amount.IsZero() {
				is.Expenses = append(is.Expenses, line)
			}
		}
	}

	is.GrossProfit = is.TotalRevenue.Sub(is.TotalCOGS)
	is.NetIncome = is.GrossProfit.Sub(is.TotalExpense)
	is.IsProfit = !is.NetIncome.IsNegative()
	return is, nil
}

// ComputeEquityStatement reconciles beginning equity (from the pre-adjustment
// trial balance) through net income, drawings and additional investment.
func (s *statementService) ComputeEquityStatement(ctx context.Context, period domain.Period) (*domain.EquityStatement, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "equity-statement:"+period.String(), func() (*domain.EquityStatement, error) {
		return s.computeEquityStatement(ctx, period)
	})
}

func (s *statementService) computeEquityStatement(ctx context.Context, period domain.Period) (*domain.EquityStatement, error) {
	tb, err := s.reportingSvc.ComputeTrialBalance(ctx, period)
	if err != nil {
		return nil, err
	}
	// Net income comes from the income statement, the single source of truth.
	is, err := s.ComputeIncomeStatement(ctx, period)
	if err != nil {
		return nil, err
	}
	byCode := s.accountsByCode(ctx)

	es := &domain.EquityStatement{Period: period.String(), NetIncome: is.NetIncome, IsProfit: is.IsProfit}
	for _, row := range tb.Rows {
		if row.AccountType != domain.Equity {
			continue
		}
		acc := lookupAccount(byCode, row.AccountCode, row.AccountName, row.AccountType)
		switch {
		case accounting.IsDrawingsAccount(acc):
			es.Drawings = es.Drawings.Add(row.Debit.Sub(row.Credit))
		case accounting.IsAdditionalInvestment(acc):
			es.AdditionalInvestment = es.AdditionalInvestment.Add(row.Credit.Sub(row.Debit))
		default:
			es.BeginningEquity = es.BeginningEquity.Add(row.Credit.Sub(row.Debit))
		}
	}

	es.EndingEquity = es.BeginningEquity.
		Add(es.AdditionalInvestment).
		Add(es.NetIncome).
		Sub(es.Drawings)
	return es, nil
}

// ComputeBalanceSheet classifies the worksheet's balance sheet columns, with
// accumulated depreciation shown as a contra-asset deduction and the equity
// section carried in from the equity statement.
func (s *statementService) ComputeBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "balance-sheet:"+period.String(), func() (*domain.BalanceSheet, error) {
		return s.computeBalanceSheet(ctx, period)
	})
}

func (s *statementService) computeBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ws, err := s.reportingSvc.ComputeWorksheet(ctx, period)
	if err != nil {
		return nil, err
	}
	es, err := s.ComputeEquityStatement(ctx, period)
	if err != nil {
		return nil, err
	}
	byCode := s.accountsByCode(ctx)

	bs := &domain.BalanceSheet{Period: period.String(), NetIncome: es.NetIncome}
	for _, row := range ws.Rows {
		if row.BalanceSheet.Debit.IsZero() && row.BalanceSheet.Credit.IsZero() {
			continue
		}
		acc := lookupAccount(byCode, row.AccountCode, row.AccountName, row.AccountType)
		line := domain.StatementLine{AccountCode: row.AccountCode, AccountName: row.AccountName}

		switch {
		case accounting.IsAccumulatedDepreciation(acc):
			// Contra-asset: carries a credit balance but reduces fixed assets.
			line.Amount = row.BalanceSheet.Credit.Sub(row.BalanceSheet.Debit)
			bs.AccumulatedDepreciation = append(bs.AccumulatedDepreciation, line)
			bs.TotalAccumDepreciation = bs.TotalAccumDepreciation.Add(line.Amount)
		case acc.Type == domain.FixedAsset:
			line.Amount = row.BalanceSheet.Debit.Sub(row.BalanceSheet.Credit)
			bs.FixedAssets = append(bs.FixedAssets, line)
			bs.GrossFixedAssets = bs.GrossFixedAssets.Add(line.Amount)
		case acc.Type == domain.CurrentAsset || acc.Type == domain.OtherAsset:
			line.Amount = row.BalanceSheet.Debit.Sub(row.BalanceSheet.Credit)
			bs.CurrentAssets = append(bs.CurrentAssets, line)
			bs.TotalCurrentAssets = bs.TotalCurrentAssets.Add(line.Amount)
		case acc.Type == domain.Liability:
			line.Amount = row.BalanceSheet.Credit.Sub(row.BalanceSheet.Debit)
			bs.Liabilities = append(bs.Liabilities, line)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Amount)
		case acc.Type == domain.Equity:
			line.Amount = row.BalanceSheet.Credit.Sub(row.BalanceSheet.Debit)
			bs.Equity = append(bs.Equity, line)
		}
	}

	bs.NetFixedAssets = bs.GrossFixedAssets.Sub(bs.TotalAccumDepreciation)
	bs.TotalAssets = bs.TotalCurrentAssets.Add(bs.NetFixedAssets)
	// The final equity figure has one source of truth: the equity statement.
	bs.TotalEquity = es.EndingEquity

	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity)).Abs()
	bs.IsBalanced = bs.Difference.LessThanOrEqual(balanceSheetTolerance)
	if !bs.IsBalanced {
		logger.Warn("Balance sheet is unbalanced",
			slog.String("period", period.String()),
			slog.String("difference", bs.Difference.String()))
	}
	return bs, nil
}

// ComputeCashFlow builds the operating-activities cash flow statement.
// Transactions are classified by description keywords and only count when
// they touch a cash account on the expected side. Beginning cash is anchored
// to the cash account's opening balance.
func (s *statementService) ComputeCashFlow(ctx context.Context, period domain.Period) (*domain.CashFlowStatement, error) {
	return cachedReport(ctx, s.cache, s.cacheTTL, "cash-flow:"+period.String(), func() (*domain.CashFlowStatement, error) {
		return s.computeCashFlow(ctx, period)
	})
}

func (s *statementService) computeCashFlow(ctx context.Context, period domain.Period) (*domain.CashFlowStatement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	cf := &domain.CashFlowStatement{Period: period.String()}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to fetch accounts for cash flow, returning empty report", slog.String("error", err.Error()), slog.String("period", period.String()))
		return cf, nil
	}
	cashCodes := make(map[string]bool)
	for _, acc := range accounts {
		if accounting.IsCashAccount(acc) {
			cashCodes[acc.Code] = true
		}
	}

	openings, err := s.obRepo.ListOpeningBalances(ctx)
	if err != nil {
		logger.Error("Failed to fetch opening balances for cash flow, returning empty report", slog.String("error", err.Error()), slog.String("period", period.String()))
		return cf, nil
	}
	for _, ob := range openings {
		if !cashCodes[ob.AccountCode] {
			continue
		}
		// Cash accounts are debit-normal: an opening debit adds cash.
		cf.BeginningCash = cf.BeginningCash.Add(accounting.SignedDelta(domain.CurrentAsset, ob.Side, ob.Amount))
	}

	start := period.Start()
	end := period.End()
	transactions, err := s.journalRepo.ListTransactions(ctx, &start, &end)
	if err != nil {
		logger.Error("Failed to fetch transactions for cash flow, returning empty report", slog.String("error", err.Error()), slog.String("period", period.String()))
		return cf, nil
	}

	for _, txn := range transactions {
		kind := accounting.ClassifyCashFlow(txn.Description)
		if kind == accounting.CashFlowNone {
			continue
		}

		// Receipts must debit cash; payments must credit cash.
		wantSide := domain.Credit
		if kind == accounting.CashFlowReceipt {
			wantSide = domain.Debit
		}
		amount := decimal.Zero
		for _, entry := range txn.Entries {
			if cashCodes[entry.AccountCode] && entry.Side == wantSide && entry.Amount.IsPositive() {
				amount = amount.Add(entry.Amount)
			}
		}
		if amount.IsZero() {
			continue
		}

		line := domain.CashFlowLine{
			Date:        txn.Date.Format("2006-01-02"),
			Description: txn.Description,
			Amount:      amount,
		}
		switch kind {
		case accounting.CashFlowReceipt:
			cf.Receipts = append(cf.Receipts, line)
			cf.TotalReceipts = cf.TotalReceipts.Add(amount)
		case accounting.CashFlowSupplierPayment:
			cf.SupplierPayments = append(cf.SupplierPayments, line)
			cf.TotalSupplierPayment = cf.TotalSupplierPayment.Add(amount)
		case accounting.CashFlowExpensePayment:
			cf.ExpensePayments = append(cf.ExpensePayments, line)
			cf.TotalExpensePayment = cf.TotalExpensePayment.Add(amount)
		}
	}

	cf.OperatingCashFlow = cf.TotalReceipts.Sub(cf.TotalSupplierPayment).Sub(cf.TotalExpensePayment)
	cf.EndingCash = cf.BeginningCash.Add(cf.OperatingCashFlow)
	return cf, nil
}
