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

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	service     portssvc.AccountSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.accountRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Code:     "  1-1600  ",
		Name:     " Sewa Dibayar di Muka ",
		Type:     domain.CurrentAsset,
		Category: "Aktiva Lancar",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("1-1600", account.Code, "code is trimmed before validation")
	suite.Equal("Sewa Dibayar di Muka", account.Name)
	suite.False(account.CreatedAt.IsZero())
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidCodeFormat() {
	for _, code := range []string{"", "11100", "1-110", "1-11000", "A-1100", "0-1100"} {
		account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
			Code: code,
			Name: "Kas",
			Type: domain.CurrentAsset,
		})
		suite.Require().Error(err, "code %q must be rejected", code)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(account)
	}
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_EmptyName() {
	account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Code: "1-1600",
		Name: "   ",
		Type: domain.CurrentAsset,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Code: "1-1100",
		Name: "Kas",
		Type: domain.CurrentAsset,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	acc := &domain.Account{Code: "1-1600", Name: "Sewa Dibayar di Muka", Type: domain.CurrentAsset}
	suite.accountRepo.On("FindAccountByCode", mock.Anything, "1-1600").Return(acc, nil).Once()
	suite.accountRepo.On("HasPostings", mock.Anything, "1-1600").Return(false, nil).Once()
	suite.accountRepo.On("DeleteAccount", mock.Anything, "1-1600").Return(nil).Once()

	err := suite.service.DeleteAccount(context.Background(), "1-1600")

	suite.Require().NoError(err)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RefusedWhilePosted() {
	acc := &domain.Account{Code: "1-1100", Name: "Kas", Type: domain.CurrentAsset}
	suite.accountRepo.On("FindAccountByCode", mock.Anything, "1-1100").Return(acc, nil).Once()
	suite.accountRepo.On("HasPostings", mock.Anything, "1-1100").Return(true, nil).Once()

	err := suite.service.DeleteAccount(context.Background(), "1-1100")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.accountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	suite.accountRepo.On("FindAccountByCode", mock.Anything, "9-9999").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(context.Background(), "9-9999")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.accountRepo.AssertNotCalled(suite.T(), "HasPostings", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
