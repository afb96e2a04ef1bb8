package accounting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	"github.com/wiradata/bukubesar_app/internal/utils/accounting"
)

func TestIncomeStatementRole(t *testing.T) {
	testCases := []struct {
		name    string
		account domain.Account
		want    domain.IncomeStatementRole
	}{
		{
			"explicit hint overrides everything",
			domain.Account{Name: "Penjualan Konsinyasi", Type: domain.CurrentAsset, ClassificationHint: domain.RoleCOGS},
			domain.RoleCOGS,
		},
		{
			"accumulated depreciation never reaches the income statement",
			domain.Account{Name: "Akumulasi Penyusutan Peralatan", Type: domain.FixedAsset},
			domain.RoleNone,
		},
		{
			"hpp keyword wins over the penjualan keyword",
			domain.Account{Name: "Harga Pokok Penjualan", Type: domain.COGS},
			domain.RoleCOGS,
		},
		{
			"penjualan keyword routes to revenue",
			domain.Account{Name: "Penjualan", Type: domain.Revenue},
			domain.RoleRevenue,
		},
		{
			"beban keyword rescues a mistyped expense",
			domain.Account{Name: "Beban Listrik", Type: domain.CurrentAsset},
			domain.RoleExpense,
		},
		{
			"falls back to the account type",
			domain.Account{Name: "Pemasukan Lain", Type: domain.Revenue},
			domain.RoleRevenue,
		},
		{
			"balance sheet account has no role",
			domain.Account{Name: "Utang Usaha", Type: domain.Liability},
			domain.RoleNone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, accounting.IncomeStatementRole(tc.account))
		})
	}
}

func TestIsDrawingsAccount(t *testing.T) {
	assert.True(t, accounting.IsDrawingsAccount(domain.Account{Name: "Prive", Type: domain.Equity}))
	assert.False(t, accounting.IsDrawingsAccount(domain.Account{Name: "Modal", Type: domain.Equity}))
	// The keyword only applies to equity accounts.
	assert.False(t, accounting.IsDrawingsAccount(domain.Account{Name: "Prive", Type: domain.CurrentAsset}))
}

func TestIsAdditionalInvestment(t *testing.T) {
	assert.True(t, accounting.IsAdditionalInvestment(domain.Account{Name: "Modal Tambahan", Type: domain.Equity}))
	assert.False(t, accounting.IsAdditionalInvestment(domain.Account{Name: "Modal", Type: domain.Equity}))
}

func TestIsCashAccount(t *testing.T) {
	assert.True(t, accounting.IsCashAccount(domain.Account{Name: "Kas", Type: domain.CurrentAsset}))
	assert.True(t, accounting.IsCashAccount(domain.Account{Name: "Bank BCA", Type: domain.CurrentAsset}))
	assert.False(t, accounting.IsCashAccount(domain.Account{Name: "Piutang Usaha", Type: domain.CurrentAsset}))
	assert.False(t, accounting.IsCashAccount(domain.Account{Name: "Kas Bon", Type: domain.Liability}))
}

func TestClassifyCashFlow(t *testing.T) {
	testCases := []struct {
		description string
		want        accounting.CashFlowKind
	}{
		{"Penerimaan penjualan tunai", accounting.CashFlowReceipt},
		{"Pelunasan piutang pelanggan", accounting.CashFlowReceipt},
		{"Pembelian persediaan tunai", accounting.CashFlowSupplierPayment},
		{"Pembayaran ke pemasok", accounting.CashFlowSupplierPayment},
		{"Pembayaran beban gaji", accounting.CashFlowExpensePayment},
		{"Bayar sewa kantor", accounting.CashFlowExpensePayment},
		{"Pengambilan prive", accounting.CashFlowNone},
		{"Setoran dari pemilik", accounting.CashFlowNone},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.want, accounting.ClassifyCashFlow(tc.description))
		})
	}
}
