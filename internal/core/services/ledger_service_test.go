package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	"github.com/wiradata/bukubesar_app/internal/core/services"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	period domain.Period
	date   time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.period = domain.Period{Year: 2025, Month: time.March}
	suite.date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_SignRoundTrip() {
	// Debit-normal: final = initial + debit - credit.
	openings := []domain.OpeningBalance{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("1000")},
	}
	transactions := []domain.Transaction{
		txn(suite.date, "Penerimaan penjualan",
			entry("1-1100", domain.Debit, "500"),
			entry("4-1100", domain.Credit, "500")),
		txn(suite.date.AddDate(0, 0, 1), "Pembayaran beban gaji",
			entry("6-1100", domain.Debit, "200"),
			entry("1-1100", domain.Credit, "200")),
	}
	f := newPipelineFixture(testAccounts(), openings, transactions, nil)

	report, err := f.ledger.ComputeLedger(context.Background(), suite.period, "")

	suite.Require().NoError(err)
	var kas *domain.AccountBalance
	for i := range report.Accounts {
		if report.Accounts[i].Account.Code == "1-1100" {
			kas = &report.Accounts[i]
		}
	}
	suite.Require().NotNil(kas, "Kas must appear in the ledger")
	suite.True(kas.InitialBalance.Equal(dec("1000")))
	suite.True(kas.TotalDebit.Equal(dec("500")))
	suite.True(kas.TotalCredit.Equal(dec("200")))
	suite.True(kas.FinalBalance.Equal(dec("1300")), "final = 1000 + 500 - 200")

	// Running balance walks the same convention: opening line first.
	suite.Require().Len(kas.Entries, 3)
	suite.True(kas.Entries[0].IsOpeningBalance)
	suite.True(kas.Entries[0].RunningBalance.Equal(dec("1000")))
	suite.True(kas.Entries[1].RunningBalance.Equal(dec("1500")))
	suite.True(kas.Entries[2].RunningBalance.Equal(dec("1300")))
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_CreditNormalMirrored() {
	transactions := []domain.Transaction{
		txn(suite.date, "Setoran modal awal",
			entry("1-1100", domain.Debit, "5000000"),
			entry("3-1100", domain.Credit, "5000000")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	report, err := f.ledger.ComputeLedger(context.Background(), suite.period, "3-1100")

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 1)
	modal := report.Accounts[0]
	suite.True(modal.FinalBalance.Equal(dec("5000000")), "credit-normal: final = initial + credit - debit")
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_SkipsMalformedPostings() {
	transactions := []domain.Transaction{
		{
			TransactionID: "t1",
			Number:        "JNL-BAD",
			Date:          suite.date,
			Description:   "Sebagian rusak",
			Entries: []domain.JournalEntry{
				entry("1-1100", domain.Debit, "100"),
				{EntryID: "e2", AccountCode: "", Side: domain.Credit, Amount: dec("100")},
				entry("4-1100", domain.Credit, "0"),
			},
			CreatedAt: suite.date,
		},
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	report, err := f.ledger.ComputeLedger(context.Background(), suite.period, "")

	suite.Require().NoError(err)
	suite.Require().Len(report.Skipped, 2)
	suite.Equal("missing account code", report.Skipped[0].Reason)
	suite.Equal("non-positive amount", report.Skipped[1].Reason)

	// The valid posting still aggregates.
	suite.Require().Len(report.Accounts, 1)
	suite.Equal("1-1100", report.Accounts[0].Account.Code)
	suite.True(report.Accounts[0].TotalDebit.Equal(dec("100")))
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_StoreFailureReturnsEmptyReport() {
	accountRepo := new(MockAccountRepository)
	obRepo := new(MockOpeningBalanceRepository)
	journalRepo := new(MockJournalRepository)
	accountRepo.On("ListAccounts", mock.Anything).Return(nil, assert.AnError)

	ledger := services.NewLedgerService(accountRepo, obRepo, journalRepo)

	report, err := ledger.ComputeLedger(context.Background(), suite.period, "")

	suite.Require().NoError(err, "store failure degrades to an empty report, not an error")
	suite.Require().NotNil(report)
	suite.Empty(report.Accounts)
	suite.Equal(suite.period.String(), report.Period)
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_UnknownAccountGetsPlaceholder() {
	transactions := []domain.Transaction{
		txn(suite.date, "Posting ke akun tak dikenal",
			entry("9-9999", domain.Debit, "50"),
			entry("1-1100", domain.Credit, "50")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	report, err := f.ledger.ComputeLedger(context.Background(), suite.period, "9-9999")

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 1)
	unknown := report.Accounts[0]
	suite.Equal("Unknown", unknown.Account.Name)
	suite.Equal(domain.OtherAsset, unknown.Account.Type)
	suite.True(unknown.FinalBalance.Equal(dec("50")))
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_DropsInactiveAccounts() {
	transactions := []domain.Transaction{
		txn(suite.date, "Penjualan tunai",
			entry("1-1100", domain.Debit, "100"),
			entry("4-1100", domain.Credit, "100")),
	}
	f := newPipelineFixture(testAccounts(), nil, transactions, nil)

	report, err := f.ledger.ComputeLedger(context.Background(), suite.period, "")

	suite.Require().NoError(err)
	codes := make([]string, 0, len(report.Accounts))
	for _, ab := range report.Accounts {
		codes = append(codes, ab.Account.Code)
	}
	suite.ElementsMatch([]string{"1-1100", "4-1100"}, codes, "accounts with no opening and no activity are pruned")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
