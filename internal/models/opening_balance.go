package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance is the DB row shape for an account's opening balance.
type OpeningBalance struct {
	AccountCode string          `db:"account_code"`
	Side        string          `db:"side"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
