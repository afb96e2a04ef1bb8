package domain

import (
	"regexp"
	"time"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	CurrentAsset AccountType = "CURRENT_ASSET"
	FixedAsset   AccountType = "FIXED_ASSET"
	OtherAsset   AccountType = "OTHER_ASSET"
	Liability    AccountType = "LIABILITY"
	Equity       AccountType = "EQUITY"
	Revenue      AccountType = "REVENUE"
	COGS         AccountType = "COGS"
	Expense      AccountType = "EXPENSE"
)

// IsDebitNormal reports whether accounts of this type carry a debit balance
// under the normal sign convention. The same convention is applied in the
// ledger aggregator, trial balance calculator, adjustment applier and
// worksheet builder.
func (t AccountType) IsDebitNormal() bool {
	switch t {
	case CurrentAsset, FixedAsset, OtherAsset, Expense, COGS:
		return true
	default:
		return false
	}
}

// IsNominal reports whether accounts of this type are closed to zero at
// period end (revenue, COGS and expense accounts).
func (t AccountType) IsNominal() bool {
	switch t {
	case Revenue, COGS, Expense:
		return true
	default:
		return false
	}
}

// IsAsset reports whether the type is any of the asset types.
func (t AccountType) IsAsset() bool {
	switch t {
	case CurrentAsset, FixedAsset, OtherAsset:
		return true
	default:
		return false
	}
}

// IncomeStatementRole is an optional first-class classification hint that
// routes an account into a specific income statement section regardless of
// its type metadata.
type IncomeStatementRole string

const (
	RoleNone    IncomeStatementRole = ""
	RoleRevenue IncomeStatementRole = "REVENUE"
	RoleCOGS    IncomeStatementRole = "COGS"
	RoleExpense IncomeStatementRole = "EXPENSE"
)

// accountCodePattern matches codes like "1-1100": a leading class digit,
// a dash, then four digits.
var accountCodePattern = regexp.MustCompile(`^[1-9]-\d{4}$`)

// ValidAccountCode reports whether code follows the "<digit>-<4 digits>" format.
func ValidAccountCode(code string) bool {
	return accountCodePattern.MatchString(code)
}

// Account represents a chart-of-accounts entry.
// Accounts are immutable once referenced by a posting; deletion is refused
// while postings exist.
type Account struct {
	Code               string              `json:"code"` // Unique, format "1-1100"
	Name               string              `json:"name"`
	Type               AccountType         `json:"type"`
	Category           string              `json:"category"`
	ClassificationHint IncomeStatementRole `json:"classificationHint,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
}
