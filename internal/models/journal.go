package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB row shape for a general journal header.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Number        string          `db:"number"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	CreatedAt     time.Time       `db:"created_at"`
}

// TransactionEntry is the DB row shape for a general journal posting line.
type TransactionEntry struct {
	EntryID       string          `db:"entry_id"`
	TransactionID string          `db:"transaction_id"`
	AccountCode   string          `db:"account_code"`
	Side          string          `db:"side"`
	Amount        decimal.Decimal `db:"amount"`
	Note          string          `db:"note"`
}

// AdjustingJournal is the DB row shape for an adjusting journal header.
type AdjustingJournal struct {
	JournalID   string          `db:"journal_id"`
	Number      string          `db:"number"`
	Period      string          `db:"period"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

// AdjustingEntry is the DB row shape for an adjusting journal posting line.
type AdjustingEntry struct {
	EntryID     string          `db:"entry_id"`
	JournalID   string          `db:"journal_id"`
	AccountCode string          `db:"account_code"`
	Side        string          `db:"side"`
	Amount      decimal.Decimal `db:"amount"`
	Note        string          `db:"note"`
}
