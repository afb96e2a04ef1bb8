package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a journal entry is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalEntry is a single posting line affecting one account.
// Within one transaction or adjusting journal the debit entries must sum
// equal to the credit entries.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	Side        EntrySide       `json:"side"`
	Amount      decimal.Decimal `json:"amount"` // Positive
	Note        string          `json:"note"`
}

// Transaction is a dated general-journal event composed of balanced entries.
// Transactions are append-only: they are created and deleted, never edited.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Number        string          `json:"number"` // Generated, "JNL-<ts>-<rand>"
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // Sum of the debit side
	Entries       []JournalEntry  `json:"entries"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// AdjustingJournal has the same shape as a Transaction but is tagged with the
// reporting period it adjusts and carries an "ADJ-" number prefix.
type AdjustingJournal struct {
	JournalID   string          `json:"journalID"`
	Number      string          `json:"number"` // Generated, "ADJ-<ts>-<rand>"
	Period      string          `json:"period"` // "YYYY-MM"
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Entries     []JournalEntry  `json:"entries"`
	CreatedAt   time.Time       `json:"createdAt"`
}
