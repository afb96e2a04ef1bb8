package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/core/services"
	"github.com/wiradata/bukubesar_app/internal/dto"
)

type OpeningBalanceServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	obRepo      *MockOpeningBalanceRepository
	service     portssvc.OpeningBalanceSvc
}

func (suite *OpeningBalanceServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.obRepo = new(MockOpeningBalanceRepository)
	suite.service = services.NewOpeningBalanceService(suite.accountRepo, suite.obRepo)
}

func (suite *OpeningBalanceServiceTestSuite) TestUpsertOpeningBalance_Success() {
	acc := &domain.Account{Code: "1-1100", Name: "Kas", Type: domain.CurrentAsset}
	suite.accountRepo.On("FindAccountByCode", mock.Anything, "1-1100").Return(acc, nil).Once()
	suite.obRepo.On("UpsertOpeningBalance", mock.Anything, mock.AnythingOfType("domain.OpeningBalance")).Return(nil).Once()

	ob, err := suite.service.UpsertOpeningBalance(context.Background(), dto.UpsertOpeningBalanceRequest{
		AccountCode: "1-1100",
		Side:        domain.Debit,
		Amount:      dec("2000000"),
		Description: "Saldo awal kas",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(ob)
	suite.Equal("1-1100", ob.AccountCode)
	suite.Equal(domain.Debit, ob.Side)
	suite.True(ob.Amount.Equal(dec("2000000")))
	suite.False(ob.CreatedAt.IsZero())
	suite.obRepo.AssertExpectations(suite.T())
}

func (suite *OpeningBalanceServiceTestSuite) TestUpsertOpeningBalance_NonPositiveAmount() {
	for _, amount := range []string{"0", "-100"} {
		ob, err := suite.service.UpsertOpeningBalance(context.Background(), dto.UpsertOpeningBalanceRequest{
			AccountCode: "1-1100",
			Side:        domain.Debit,
			Amount:      dec(amount),
		})
		suite.Require().Error(err, "amount %s must be rejected", amount)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(ob)
	}
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountByCode", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestUpsertOpeningBalance_UnknownAccount() {
	suite.accountRepo.On("FindAccountByCode", mock.Anything, "9-9999").Return(nil, apperrors.ErrNotFound).Once()

	ob, err := suite.service.UpsertOpeningBalance(context.Background(), dto.UpsertOpeningBalanceRequest{
		AccountCode: "9-9999",
		Side:        domain.Debit,
		Amount:      dec("100"),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(ob)
	suite.obRepo.AssertNotCalled(suite.T(), "UpsertOpeningBalance", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestDeleteOpeningBalance_NotFound() {
	suite.obRepo.On("DeleteOpeningBalance", mock.Anything, "1-1100").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteOpeningBalance(context.Background(), "1-1100")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OpeningBalanceServiceTestSuite) TestListOpeningBalances_Passthrough() {
	balances := []domain.OpeningBalance{
		{AccountCode: "1-1100", Side: domain.Debit, Amount: dec("2000000")},
	}
	suite.obRepo.On("ListOpeningBalances", mock.Anything).Return(balances, nil).Once()

	got, err := suite.service.ListOpeningBalances(context.Background())

	suite.Require().NoError(err)
	suite.Equal(balances, got)
}

func TestOpeningBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpeningBalanceServiceTestSuite))
}
