package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	"github.com/wiradata/bukubesar_app/internal/utils/accounting"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSignedDelta(t *testing.T) {
	testCases := []struct {
		name        string
		accountType domain.AccountType
		side        domain.EntrySide
		want        string
	}{
		{"debit to asset is positive", domain.CurrentAsset, domain.Debit, "100"},
		{"credit to asset is negative", domain.CurrentAsset, domain.Credit, "-100"},
		{"debit to expense is positive", domain.Expense, domain.Debit, "100"},
		{"debit to cogs is positive", domain.COGS, domain.Debit, "100"},
		{"debit to liability is negative", domain.Liability, domain.Debit, "-100"},
		{"credit to liability is positive", domain.Liability, domain.Credit, "100"},
		{"credit to equity is positive", domain.Equity, domain.Credit, "100"},
		{"credit to revenue is positive", domain.Revenue, domain.Credit, "100"},
		{"debit to revenue is negative", domain.Revenue, domain.Debit, "-100"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := accounting.SignedDelta(tc.accountType, tc.side, dec("100"))
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestFinalBalance(t *testing.T) {
	// Debit-normal: initial + debit - credit.
	got := accounting.FinalBalance(domain.CurrentAsset, dec("1000"), dec("500"), dec("200"))
	assert.True(t, got.Equal(dec("1300")))

	// Credit-normal: initial + credit - debit.
	got = accounting.FinalBalance(domain.Liability, dec("1000"), dec("500"), dec("200"))
	assert.True(t, got.Equal(dec("700")))
}

func TestSplitBalance(t *testing.T) {
	debit, credit := accounting.SplitBalance(domain.CurrentAsset, dec("300"))
	assert.True(t, debit.Equal(dec("300")))
	assert.True(t, credit.IsZero())

	// An overdrawn asset flips to the credit column.
	debit, credit = accounting.SplitBalance(domain.CurrentAsset, dec("-300"))
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(dec("300")))

	debit, credit = accounting.SplitBalance(domain.Revenue, dec("300"))
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(dec("300")))

	debit, credit = accounting.SplitBalance(domain.Revenue, dec("-300"))
	assert.True(t, debit.Equal(dec("300")))
	assert.True(t, credit.IsZero())
}

func TestNetColumns(t *testing.T) {
	// An asset touched on both sides nets into one column instead of
	// double-counting.
	debit, credit := accounting.NetColumns(domain.CurrentAsset, dec("800"), dec("300"))
	assert.True(t, debit.Equal(dec("500")))
	assert.True(t, credit.IsZero())

	debit, credit = accounting.NetColumns(domain.Equity, dec("300"), dec("800"))
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(dec("500")))
}

func TestValidateEntries(t *testing.T) {
	balanced := []domain.JournalEntry{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("750")},
		{AccountCode: "4-1100", Side: domain.Credit, Amount: dec("750")},
	}
	require.NoError(t, accounting.ValidateEntries(balanced))

	err := accounting.ValidateEntries(balanced[:1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two entries")

	unbalanced := []domain.JournalEntry{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("750")},
		{AccountCode: "4-1100", Side: domain.Credit, Amount: dec("700")},
	}
	err = accounting.ValidateEntries(unbalanced)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not balance")

	nonPositive := []domain.JournalEntry{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("0")},
		{AccountCode: "4-1100", Side: domain.Credit, Amount: dec("0")},
	}
	err = accounting.ValidateEntries(nonPositive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestDebitTotal(t *testing.T) {
	entries := []domain.JournalEntry{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("400")},
		{AccountCode: "5-1100", Side: domain.Debit, Amount: dec("350")},
		{AccountCode: "4-1100", Side: domain.Credit, Amount: dec("750")},
	}
	assert.True(t, accounting.DebitTotal(entries).Equal(dec("750")))
	assert.True(t, accounting.DebitTotal(nil).IsZero())
}
