package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/dto"
	"github.com/wiradata/bukubesar_app/internal/middleware"
)

// accountService manages the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountSvc.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

// CreateAccount validates and persists a new chart-of-accounts entry.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := strings.TrimSpace(req.Code)
	if !domain.ValidAccountCode(code) {
		return nil, fmt.Errorf("%w: account code %q must match D-DDDD", apperrors.ErrValidation, code)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	account := domain.Account{
		Code:               code,
		Name:               name,
		Type:               req.Type,
		Category:           strings.TrimSpace(req.Category),
		ClassificationHint: req.ClassificationHint,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created successfully", slog.String("code", code), slog.String("type", string(account.Type)))
	return &account, nil
}

// GetAccountByCode retrieves a single account.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts retrieves the full chart of accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account that has no postings against it.
func (s *accountService) DeleteAccount(ctx context.Context, code string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByCode(ctx, code); err != nil {
		return fmt.Errorf("failed to find account %s: %w", code, err)
	}

	referenced, err := s.accountRepo.HasPostings(ctx, code)
	if err != nil {
		logger.Error("Failed to check postings before account delete", slog.String("error", err.Error()), slog.String("code", code))
		return fmt.Errorf("failed to check postings for account %s: %w", code, err)
	}
	if referenced {
		return fmt.Errorf("%w: account %s has journal entries posted against it", apperrors.ErrConflict, code)
	}

	if err := s.accountRepo.DeleteAccount(ctx, code); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", code, err)
	}
	logger.Info("Account deleted", slog.String("code", code))
	return nil
}
