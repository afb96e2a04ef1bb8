package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance seeds an account's ledger at the start of bookkeeping.
// At most one exists per account; upserting again overwrites the earlier one.
type OpeningBalance struct {
	AccountCode string          `json:"accountCode"`
	Side        EntrySide       `json:"side"`
	Amount      decimal.Decimal `json:"amount"` // Positive
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
