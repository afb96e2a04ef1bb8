package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	"github.com/wiradata/bukubesar_app/internal/models"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		Code:               d.Code,
		Name:               d.Name,
		AccountType:        models.AccountType(d.Type),
		Category:           d.Category,
		ClassificationHint: string(d.ClassificationHint),
		CreatedAt:          d.CreatedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:               m.Code,
		Name:               m.Name,
		Type:               domain.AccountType(m.AccountType),
		Category:           m.Category,
		ClassificationHint: domain.IncomeStatementRole(m.ClassificationHint),
		CreatedAt:          m.CreatedAt,
	}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		INSERT INTO accounts (code, name, account_type, category, classification_hint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		modelAcc.Code,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.Category,
		modelAcc.ClassificationHint,
		modelAcc.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, modelAcc.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.Code, err)
	}
	return nil
}

// FindAccountByCode retrieves an account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT code, name, account_type, category, classification_hint, created_at
		FROM accounts
		WHERE code = $1;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&modelAcc.Code,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.Category,
		&modelAcc.ClassificationHint,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves the full chart of accounts sorted by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT code, name, account_type, category, classification_hint, created_at
		FROM accounts
		ORDER BY code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		err := rows.Scan(
			&modelAcc.Code,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.Category,
			&modelAcc.ClassificationHint,
			&modelAcc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(modelAcc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

// HasPostings reports whether any journal entry references the account code.
func (r *PgxAccountRepository) HasPostings(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM transaction_entries WHERE account_code = $1)
		    OR EXISTS (SELECT 1 FROM adjusting_entries WHERE account_code = $1);
	`
	var referenced bool
	if err := r.pool.QueryRow(ctx, query, code).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check postings for account %s: %w", code, err)
	}
	return referenced, nil
}

// DeleteAccount removes an account by code.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, code string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE code = $1;`, code)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
