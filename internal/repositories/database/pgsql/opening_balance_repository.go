package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	"github.com/wiradata/bukubesar_app/internal/models"
)

type PgxOpeningBalanceRepository struct {
	pool *pgxpool.Pool
}

// newPgxOpeningBalanceRepository creates a new repository for opening balances.
func newPgxOpeningBalanceRepository(pool *pgxpool.Pool) portsrepo.OpeningBalanceRepository {
	return &PgxOpeningBalanceRepository{pool: pool}
}

var _ portsrepo.OpeningBalanceRepository = (*PgxOpeningBalanceRepository)(nil)

func toDomainOpeningBalance(m models.OpeningBalance) domain.OpeningBalance {
	return domain.OpeningBalance{
		AccountCode: m.AccountCode,
		Side:        domain.EntrySide(m.Side),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// UpsertOpeningBalance inserts the opening balance for an account, replacing a
// previous one for the same code.
func (r *PgxOpeningBalanceRepository) UpsertOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	query := `
		INSERT INTO opening_balances (account_code, side, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_code) DO UPDATE
		SET side = EXCLUDED.side, amount = EXCLUDED.amount, description = EXCLUDED.description, created_at = EXCLUDED.created_at;
	`
	_, err := r.pool.Exec(ctx, query,
		ob.AccountCode,
		string(ob.Side),
		ob.Amount,
		ob.Description,
		ob.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert opening balance for %s: %w", ob.AccountCode, err)
	}
	return nil
}

// ListOpeningBalances retrieves all opening balances sorted by account code.
func (r *PgxOpeningBalanceRepository) ListOpeningBalances(ctx context.Context) ([]domain.OpeningBalance, error) {
	query := `
		SELECT account_code, side, amount, description, created_at
		FROM opening_balances
		ORDER BY account_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query opening balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.OpeningBalance{}
	for rows.Next() {
		var m models.OpeningBalance
		err := rows.Scan(&m.AccountCode, &m.Side, &m.Amount, &m.Description, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opening balance row: %w", err)
		}
		balances = append(balances, toDomainOpeningBalance(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating opening balance rows: %w", rows.Err())
	}
	return balances, nil
}

// DeleteOpeningBalance removes the opening balance for an account code.
func (r *PgxOpeningBalanceRepository) DeleteOpeningBalance(ctx context.Context, accountCode string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM opening_balances WHERE account_code = $1;`, accountCode)
	if err != nil {
		return fmt.Errorf("failed to delete opening balance for %s: %w", accountCode, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
