package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row in a trial balance.
// Exactly one of Debit/Credit is non-zero: the account's final balance split
// into its display column per the sign convention.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance is the pre-adjustment trial balance for a period.
// An unbalanced result is reported via IsBalanced/Difference rather than an
// error so the caller can still render and diagnose it.
type TrialBalance struct {
	Period      string           `json:"period"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal  `json:"totalDebit"`
	TotalCredit decimal.Decimal  `json:"totalCredit"`
	IsBalanced  bool             `json:"isBalanced"`
	Difference  decimal.Decimal  `json:"difference"`
	Skipped     []SkippedPosting `json:"skipped,omitempty"`
}

// AdjustedTrialBalanceRow carries an account through the adjustment step.
type AdjustedTrialBalanceRow struct {
	AccountCode      string          `json:"accountCode"`
	AccountName      string          `json:"accountName"`
	AccountType      AccountType     `json:"accountType"`
	DebitBefore      decimal.Decimal `json:"debitBefore"`
	CreditBefore     decimal.Decimal `json:"creditBefore"`
	AdjustmentDebit  decimal.Decimal `json:"adjustmentDebit"`
	AdjustmentCredit decimal.Decimal `json:"adjustmentCredit"`
	DebitAfter       decimal.Decimal `json:"debitAfter"`
	CreditAfter      decimal.Decimal `json:"creditAfter"`
}

// AdjustedTrialBalance is the post-adjustment trial balance for a period.
type AdjustedTrialBalance struct {
	Period      string                    `json:"period"`
	Rows        []AdjustedTrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
	IsBalanced  bool                      `json:"isBalanced"`
	Difference  decimal.Decimal           `json:"difference"`
}

// WorksheetColumns is one debit/credit column pair of the worksheet.
type WorksheetColumns struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// WorksheetRow carries an account through all five worksheet column pairs.
// An account routed to the income statement has zero balance sheet columns
// and vice versa.
type WorksheetRow struct {
	AccountCode  string           `json:"accountCode"`
	AccountName  string           `json:"accountName"`
	AccountType  AccountType      `json:"accountType"`
	TrialBalance WorksheetColumns `json:"trialBalance"`
	Adjustments  WorksheetColumns `json:"adjustments"`
	Adjusted     WorksheetColumns `json:"adjusted"`
	IncomeStmt   WorksheetColumns `json:"incomeStatement"`
	BalanceSheet WorksheetColumns `json:"balanceSheet"`
}

// WorksheetTotals sums every column pair over all rows.
type WorksheetTotals struct {
	TrialBalance WorksheetColumns `json:"trialBalance"`
	Adjustments  WorksheetColumns `json:"adjustments"`
	Adjusted     WorksheetColumns `json:"adjusted"`
	IncomeStmt   WorksheetColumns `json:"incomeStatement"`
	BalanceSheet WorksheetColumns `json:"balanceSheet"`
}

// Worksheet is the multi-column worksheet for a period. NetIncome is the
// balancing plug that forces the income statement and balance sheet column
// pairs to balance independently.
type Worksheet struct {
	Period      string           `json:"period"`
	Rows        []WorksheetRow   `json:"rows"`
	Totals      WorksheetTotals  `json:"totals"`      // Column sums before the plug
	Plug        WorksheetTotals  `json:"plug"`        // Net income plug row
	GrandTotals WorksheetTotals  `json:"grandTotals"` // Totals + plug
	NetIncome   decimal.Decimal  `json:"netIncome"`
	IsProfit    bool             `json:"isProfit"`
	IsBalanced  bool             `json:"isBalanced"`
	Skipped     []SkippedPosting `json:"skipped,omitempty"`
}

// StatementLine is a named amount inside a financial statement section.
type StatementLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatement partitions income-statement accounts into revenue, cost of
// goods sold and operating expense sections.
type IncomeStatement struct {
	Period       string          `json:"period"`
	Revenue      []StatementLine `json:"revenue"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	COGS         []StatementLine `json:"cogs"`
	TotalCOGS    decimal.Decimal `json:"totalCOGS"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	Expenses     []StatementLine `json:"expenses"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	IsProfit     bool            `json:"isProfit"`
}

// EquityStatement reconciles beginning to ending owner's equity.
type EquityStatement struct {
	Period               string          `json:"period"`
	BeginningEquity      decimal.Decimal `json:"beginningEquity"`
	AdditionalInvestment decimal.Decimal `json:"additionalInvestment"`
	NetIncome            decimal.Decimal `json:"netIncome"`
	Drawings             decimal.Decimal `json:"drawings"`
	EndingEquity         decimal.Decimal `json:"endingEquity"`
	IsProfit             bool            `json:"isProfit"`
}

// BalanceSheet is the classified statement of financial position.
// Accumulated depreciation accounts are shown as contra-asset deductions
// against gross fixed assets.
type BalanceSheet struct {
	Period                  string          `json:"period"`
	CurrentAssets           []StatementLine `json:"currentAssets"`
	TotalCurrentAssets      decimal.Decimal `json:"totalCurrentAssets"`
	FixedAssets             []StatementLine `json:"fixedAssets"`
	GrossFixedAssets        decimal.Decimal `json:"grossFixedAssets"`
	AccumulatedDepreciation []StatementLine `json:"accumulatedDepreciation"`
	TotalAccumDepreciation  decimal.Decimal `json:"totalAccumulatedDepreciation"`
	NetFixedAssets          decimal.Decimal `json:"netFixedAssets"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`
	Liabilities             []StatementLine `json:"liabilities"`
	TotalLiabilities        decimal.Decimal `json:"totalLiabilities"`
	Equity                  []StatementLine `json:"equity"`
	NetIncome               decimal.Decimal `json:"netIncome"`
	TotalEquity             decimal.Decimal `json:"totalEquity"`
	IsBalanced              bool            `json:"isBalanced"`
	Difference              decimal.Decimal `json:"difference"`
}

// CashFlowLine is a single classified cash movement.
type CashFlowLine struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowStatement covers operating activities only. BeginningCash is
// anchored to the cash account's opening balance, not the adjusted trial
// balance; for non-initial periods this is a documented limitation carried
// over from the product's observed behavior.
type CashFlowStatement struct {
	Period               string          `json:"period"`
	Receipts             []CashFlowLine  `json:"receipts"`
	TotalReceipts        decimal.Decimal `json:"totalReceipts"`
	SupplierPayments     []CashFlowLine  `json:"supplierPayments"`
	TotalSupplierPayment decimal.Decimal `json:"totalSupplierPayments"`
	ExpensePayments      []CashFlowLine  `json:"expensePayments"`
	TotalExpensePayment  decimal.Decimal `json:"totalExpensePayments"`
	OperatingCashFlow    decimal.Decimal `json:"operatingCashFlow"`
	BeginningCash        decimal.Decimal `json:"beginningCash"`
	EndingCash           decimal.Decimal `json:"endingCash"`
}

// ClosingEntry is one posting line of the period-end close.
type ClosingEntry struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Side        EntrySide       `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
}

// ClosingEntries is the ordered closing journal for a period: revenue into
// income summary, expenses into income summary, income summary into equity.
type ClosingEntries struct {
	Period      string          `json:"period"`
	Entries     []ClosingEntry  `json:"entries"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	IsBalanced  bool            `json:"isBalanced"`
}

// PostClosingTrialBalance lists only real (permanent) accounts after closing,
// with the equity row overridden by the equity statement's ending balance.
type PostClosingTrialBalance struct {
	Period      string            `json:"period"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
	Difference  decimal.Decimal   `json:"difference"`
}
