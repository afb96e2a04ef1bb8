package accounting

import (
	"strings"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
)

// Account names are free text entered by users; type metadata is sometimes
// absent or stale. The keyword lists below rescue classification for the
// common Indonesian account names (HPP, Penyusutan, Beban, Penjualan,
// Pendapatan) and their English equivalents. A keyword match overrides the
// type-derived routing; an explicit ClassificationHint overrides both.
var (
	accumDepreciationKeywords = []string{"akumulasi penyusutan", "accumulated depreciation"}
	cogsKeywords              = []string{"hpp", "harga pokok", "cost of goods"}
	revenueKeywords           = []string{"penjualan", "pendapatan", "sales revenue"}
	expenseKeywords           = []string{"beban", "penyusutan", "depreciation"}
	drawingsKeywords          = []string{"prive", "drawing"}
	additionalCapitalKeywords = []string{"tambahan", "additional investment"}
	cashKeywords              = []string{"kas", "cash", "bank"}
)

func nameMatches(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsAccumulatedDepreciation reports whether the account is a contra-asset
// accumulated depreciation account. These carry a credit balance but belong
// on the balance sheet, so they are checked before any income statement
// keyword can claim them.
func IsAccumulatedDepreciation(acc domain.Account) bool {
	return nameMatches(acc.Name, accumDepreciationKeywords)
}

// IncomeStatementRole resolves which income statement section an account
// feeds, or RoleNone for balance sheet accounts. Resolution order:
// explicit hint, contra-asset carve-out, name keywords, account type.
func IncomeStatementRole(acc domain.Account) domain.IncomeStatementRole {
	if acc.ClassificationHint != domain.RoleNone {
		return acc.ClassificationHint
	}
	if IsAccumulatedDepreciation(acc) {
		return domain.RoleNone
	}
	switch {
	case nameMatches(acc.Name, cogsKeywords):
		return domain.RoleCOGS
	case nameMatches(acc.Name, revenueKeywords):
		return domain.RoleRevenue
	case nameMatches(acc.Name, expenseKeywords):
		return domain.RoleExpense
	}
	switch acc.Type {
	case domain.Revenue:
		return domain.RoleRevenue
	case domain.COGS:
		return domain.RoleCOGS
	case domain.Expense:
		return domain.RoleExpense
	default:
		return domain.RoleNone
	}
}

// IsIncomeStatementAccount reports whether the account routes to the income
// statement columns of the worksheet.
func IsIncomeStatementAccount(acc domain.Account) bool {
	return IncomeStatementRole(acc) != domain.RoleNone
}

// IsDrawingsAccount reports whether an equity account records owner drawings
// (prive), which reduce ending equity rather than counting as capital.
func IsDrawingsAccount(acc domain.Account) bool {
	return acc.Type == domain.Equity && nameMatches(acc.Name, drawingsKeywords)
}

// IsAdditionalInvestment reports whether an equity account records capital
// added during the period on top of the beginning balance.
func IsAdditionalInvestment(acc domain.Account) bool {
	return acc.Type == domain.Equity && nameMatches(acc.Name, additionalCapitalKeywords)
}

// IsCashAccount reports whether the account holds cash for cash flow
// classification purposes.
func IsCashAccount(acc domain.Account) bool {
	return acc.Type == domain.CurrentAsset && nameMatches(acc.Name, cashKeywords)
}

// Cash flow classification works off the free-text transaction description,
// not the account: a posting only counts when it also touches a cash account
// on the expected side.
var (
	receiptKeywords  = []string{"penjualan", "pendapatan", "penerimaan", "pelunasan piutang", "sales", "receipt"}
	supplierKeywords = []string{"pembelian", "persediaan", "pemasok", "supplier", "purchase"}
	expensePayKey    = []string{"beban", "biaya", "gaji", "sewa", "listrik", "expense", "utilit"}
)

// CashFlowKind classifies an operating cash movement.
type CashFlowKind int

const (
	CashFlowNone CashFlowKind = iota
	CashFlowReceipt
	CashFlowSupplierPayment
	CashFlowExpensePayment
)

// ClassifyCashFlow buckets a transaction description into an operating
// activity. Order matters: receipts first so "penerimaan penjualan" is not
// claimed by the supplier keywords.
func ClassifyCashFlow(description string) CashFlowKind {
	switch {
	case nameMatches(description, receiptKeywords):
		return CashFlowReceipt
	case nameMatches(description, supplierKeywords):
		return CashFlowSupplierPayment
	case nameMatches(description, expensePayKey):
		return CashFlowExpensePayment
	default:
		return CashFlowNone
	}
}
