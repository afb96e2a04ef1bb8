package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/dto"
	"github.com/wiradata/bukubesar_app/internal/middleware"
)

// openingBalanceService manages per-account opening balances.
type openingBalanceService struct {
	accountRepo portsrepo.AccountRepository
	obRepo      portsrepo.OpeningBalanceRepository
}

// NewOpeningBalanceService creates a new OpeningBalanceSvc.
func NewOpeningBalanceService(accountRepo portsrepo.AccountRepository, obRepo portsrepo.OpeningBalanceRepository) portssvc.OpeningBalanceSvc {
	return &openingBalanceService{accountRepo: accountRepo, obRepo: obRepo}
}

var _ portssvc.OpeningBalanceSvc = (*openingBalanceService)(nil)

// UpsertOpeningBalance sets the opening balance for an existing account,
// overwriting any previous value for the same code.
func (s *openingBalanceService) UpsertOpeningBalance(ctx context.Context, req dto.UpsertOpeningBalanceRequest) (*domain.OpeningBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: opening balance amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByCode(ctx, req.AccountCode); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", req.AccountCode, err)
	}

	ob := domain.OpeningBalance{
		AccountCode: req.AccountCode,
		Side:        req.Side,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.obRepo.UpsertOpeningBalance(ctx, ob); err != nil {
		logger.Error("Failed to upsert opening balance", slog.String("error", err.Error()), slog.String("account_code", req.AccountCode))
		return nil, fmt.Errorf("failed to save opening balance: %w", err)
	}

	logger.Info("Opening balance saved", slog.String("account_code", ob.AccountCode), slog.String("amount", ob.Amount.String()))
	return &ob, nil
}

// ListOpeningBalances retrieves all opening balances.
func (s *openingBalanceService) ListOpeningBalances(ctx context.Context) ([]domain.OpeningBalance, error) {
	balances, err := s.obRepo.ListOpeningBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve opening balances: %w", err)
	}
	return balances, nil
}

// DeleteOpeningBalance removes the opening balance for an account code.
func (s *openingBalanceService) DeleteOpeningBalance(ctx context.Context, accountCode string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.obRepo.DeleteOpeningBalance(ctx, accountCode); err != nil {
		return fmt.Errorf("failed to delete opening balance for %s: %w", accountCode, err)
	}
	logger.Info("Opening balance deleted", slog.String("account_code", accountCode))
	return nil
}
