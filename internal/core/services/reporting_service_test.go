package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	period domain.Period
	date   time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.period = domain.Period{Year: 2025, Month: time.March}
	suite.date = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) rowByCode(rows []domain.TrialBalanceRow, code string) *domain.TrialBalanceRow {
	for i := range rows {
		if rows[i].AccountCode == code {
			return &rows[i]
		}
	}
	return nil
}

// Setoran modal 5.000.000 tunai, lalu pembelian persediaan 2.000.000 tunai.
func (suite *ReportingServiceTestSuite) TestComputeTrialBalance_CapitalAndInventoryScenario() {
	transactions := []domain.Transaction{
		txn(suite.date, "Setoran modal awal",
			entry("1-1100", domain.Debit, "5000000"),
			entry("3-1100", domain.Credit, "5000000")),
		txn(suite.date.AddDate(0, 0, 1), "Pembelian persediaan tunai",
			entry("1-1400", domain.Debit, "2000000"),
			entry("1-1100", domain.Credit, "2000000")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	tb, err := f.reporting.ComputeTrialBalance(context.Background(), suite.period)

	suite.Require().NoError(err)
	kas := suite.rowByCode(tb.Rows, "1-1100")
	suite.Require().NotNil(kas)
	suite.True(kas.Debit.Equal(dec("3000000")), "Kas = 5.000.000 - 2.000.000")
	suite.True(kas.Credit.IsZero())

	persediaan := suite.rowByCode(tb.Rows, "1-1400")
	suite.Require().NotNil(persediaan)
	suite.True(persediaan.Debit.Equal(dec("2000000")))

	modal := suite.rowByCode(tb.Rows, "3-1100")
	suite.Require().NotNil(modal)
	suite.True(modal.Credit.Equal(dec("5000000")))

	suite.True(tb.TotalDebit.Equal(dec("5000000")))
	suite.True(tb.TotalCredit.Equal(dec("5000000")))
	suite.True(tb.IsBalanced)
	suite.True(tb.Difference.IsZero())
}

func (suite *ReportingServiceTestSuite) TestComputeTrialBalance_UnbalancedInjection() {
	// A corrupt stored transaction: debit 100 vs credit 90. The report is
	// still produced and flags the imbalance instead of erroring.
	transactions := []domain.Transaction{
		txn(suite.date, "Transaksi korup",
			entry("1-1100", domain.Debit, "100"),
			entry("4-1100", domain.Credit, "90")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	tb, err := f.reporting.ComputeTrialBalance(context.Background(), suite.period)

	suite.Require().NoError(err)
	suite.False(tb.IsBalanced)
	suite.True(tb.Difference.Equal(dec("10")))
}

func (suite *ReportingServiceTestSuite) TestComputeTrialBalance_EmptyLedgerListsWholeChart() {
	f := newPipelineFixture(testAccounts(), nil, nil, nil)

	tb, err := f.reporting.ComputeTrialBalance(context.Background(), suite.period)

	suite.Require().NoError(err)
	suite.Len(tb.Rows, len(testAccounts()), "every chart account appears with zero balances")
	suite.True(tb.TotalDebit.IsZero())
	suite.True(tb.TotalCredit.IsZero())
	suite.True(tb.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestComputeAdjustedTrialBalance_NoAdjustmentsIsIdentity() {
	transactions := []domain.Transaction{
		txn(suite.date, "Penjualan tunai",
			entry("1-1100", domain.Debit, "750"),
			entry("4-1100", domain.Credit, "750")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	tb, err := f.reporting.ComputeTrialBalance(context.Background(), suite.period)
	suite.Require().NoError(err)
	atb, err := f.reporting.ComputeAdjustedTrialBalance(context.Background(), suite.period)
	suite.Require().NoError(err)

	suite.Require().Len(atb.Rows, len(tb.Rows))
	for _, row := range atb.Rows {
		before := suite.rowByCode(tb.Rows, row.AccountCode)
		suite.Require().NotNil(before)
		suite.True(row.DebitAfter.Equal(before.Debit), "account %s debit unchanged", row.AccountCode)
		suite.True(row.CreditAfter.Equal(before.Credit), "account %s credit unchanged", row.AccountCode)
		suite.True(row.AdjustmentDebit.IsZero())
		suite.True(row.AdjustmentCredit.IsZero())
	}
	suite.True(atb.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestComputeAdjustedTrialBalance_DepreciationAdjustment() {
	transactions := []domain.Transaction{
		txn(suite.date, "Pembelian peralatan tunai",
			entry("1-2100", domain.Debit, "12000"),
			entry("1-1100", domain.Credit, "12000")),
	}
	adjustments := []domain.AdjustingJournal{
		{
			JournalID: uuid.NewString(),
			Number:    "ADJ-TEST",
			Period:    suite.period.String(),
			Date:      suite.period.End(),
			Entries: []domain.JournalEntry{
				entry("6-1400", domain.Debit, "500"),
				entry("1-2110", domain.Credit, "500"),
			},
		},
	}
	f := newPipelineFixture(testAccounts(), []domain.OpeningBalance{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("12000")},
		{AccountCode: "3-1100", Side: domain.Credit, Amount: dec("12000")},
	}, transactions, adjustments)

	atb, err := f.reporting.ComputeAdjustedTrialBalance(context.Background(), suite.period)

	suite.Require().NoError(err)
	var beban, akum *domain.AdjustedTrialBalanceRow
	for i := range atb.Rows {
		switch atb.Rows[i].AccountCode {
		case "6-1400":
			beban = &atb.Rows[i]
		case "1-2110":
			akum = &atb.Rows[i]
		}
	}
	suite.Require().NotNil(beban)
	suite.Require().NotNil(akum)
	suite.True(beban.DebitAfter.Equal(dec("500")))
	suite.True(akum.CreditAfter.Equal(dec("500")), "contra-asset ends with a credit balance")
	suite.True(atb.IsBalanced)
	suite.True(atb.TotalDebit.Equal(atb.TotalCredit))
}

func (suite *ReportingServiceTestSuite) TestComputeWorksheet_NetIncomePlug() {
	transactions := []domain.Transaction{
		txn(suite.date, "Penjualan tunai",
			entry("1-1100", domain.Debit, "10000000"),
			entry("4-1100", domain.Credit, "10000000")),
		txn(suite.date.AddDate(0, 0, 2), "Pembayaran beban gaji",
			entry("6-1100", domain.Debit, "6000000"),
			entry("1-1100", domain.Credit, "6000000")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	ws, err := f.reporting.ComputeWorksheet(context.Background(), suite.period)

	suite.Require().NoError(err)
	suite.True(ws.NetIncome.Equal(dec("4000000")))
	suite.True(ws.IsProfit)

	// Profit plugs a debit into the income statement pair and a credit into
	// the balance sheet pair, forcing both pairs to balance.
	suite.True(ws.Plug.IncomeStmt.Debit.Equal(dec("4000000")))
	suite.True(ws.Plug.BalanceSheet.Credit.Equal(dec("4000000")))
	suite.True(ws.GrandTotals.IncomeStmt.Debit.Equal(ws.GrandTotals.IncomeStmt.Credit))
	suite.True(ws.GrandTotals.BalanceSheet.Debit.Equal(ws.GrandTotals.BalanceSheet.Credit))
	suite.True(ws.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestComputeWorksheet_LossMirrorsPlug() {
	transactions := []domain.Transaction{
		txn(suite.date, "Penjualan tunai",
			entry("1-1100", domain.Debit, "1000"),
			entry("4-1100", domain.Credit, "1000")),
		txn(suite.date.AddDate(0, 0, 1), "Pembayaran beban sewa gedung",
			entry("6-1100", domain.Debit, "1500"),
			entry("1-1100", domain.Credit, "1500")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	ws, err := f.reporting.ComputeWorksheet(context.Background(), suite.period)

	suite.Require().NoError(err)
	suite.True(ws.NetIncome.Equal(dec("-500")))
	suite.False(ws.IsProfit)
	suite.True(ws.Plug.IncomeStmt.Credit.Equal(dec("500")))
	suite.True(ws.Plug.BalanceSheet.Debit.Equal(dec("500")))
	suite.True(ws.IsBalanced)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
