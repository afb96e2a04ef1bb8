package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is a single row in an account's general ledger view.
type LedgerLine struct {
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	RunningBalance   decimal.Decimal `json:"runningBalance"`
	IsOpeningBalance bool            `json:"isOpeningBalance"`
}

// AccountBalance aggregates all postings for one account over a period.
// The balances are signed per the account type's normal side: a positive
// FinalBalance on a debit-normal account displays in the debit column.
type AccountBalance struct {
	Account        Account         `json:"account"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
	Entries        []LedgerLine    `json:"entries"`
}

// SkippedPosting records a malformed posting that ledger aggregation dropped.
// Skipping instead of failing is contract: report computation is best-effort.
type SkippedPosting struct {
	TransactionNumber string `json:"transactionNumber"`
	AccountCode       string `json:"accountCode"`
	Reason            string `json:"reason"`
}

// LedgerReport is the full general ledger for a period.
type LedgerReport struct {
	Period   string           `json:"period"`
	Accounts []AccountBalance `json:"accounts"` // Sorted by account code
	Skipped  []SkippedPosting `json:"skipped,omitempty"`
}
