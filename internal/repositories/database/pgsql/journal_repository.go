package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	"github.com/wiradata/bukubesar_app/internal/models"
	"github.com/wiradata/bukubesar_app/internal/utils/pagination"
)

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// newPgxJournalRepository creates a new repository for general journal
// transactions and adjusting journals.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func toDomainTransaction(m models.Transaction, entries []domain.JournalEntry) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Number:        m.Number,
		Date:          m.Date,
		Description:   m.Description,
		TotalAmount:   m.TotalAmount,
		Entries:       entries,
		CreatedAt:     m.CreatedAt,
	}
}

func toDomainAdjustingJournal(m models.AdjustingJournal, entries []domain.JournalEntry) domain.AdjustingJournal {
	return domain.AdjustingJournal{
		JournalID:   m.JournalID,
		Number:      m.Number,
		Period:      m.Period,
		Date:        m.Date,
		Description: m.Description,
		TotalAmount: m.TotalAmount,
		Entries:     entries,
		CreatedAt:   m.CreatedAt,
	}
}

// entriesByParent loads posting lines for a set of parent IDs in one query and
// groups them per parent, preserving insertion order.
func (r *PgxJournalRepository) entriesByParent(ctx context.Context, table, parentCol string, parentIDs []string) (map[string][]domain.JournalEntry, error) {
	grouped := make(map[string][]domain.JournalEntry, len(parentIDs))
	if len(parentIDs) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf(`
		SELECT entry_id, %s, account_code, side, amount, note
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY entry_id;
	`, parentCol, table, parentCol)

	rows, err := r.pool.Query(ctx, query, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.JournalEntry
		var parentID, side string
		if err := rows.Scan(&entry.EntryID, &parentID, &entry.AccountCode, &side, &entry.Amount, &entry.Note); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		entry.Side = domain.EntrySide(side)
		grouped[parentID] = append(grouped[parentID], entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, rows.Err())
	}
	return grouped, nil
}

// FindTransactionByID retrieves one transaction with its entries.
func (r *PgxJournalRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, number, date, description, total_amount, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID, &m.Number, &m.Date, &m.Description, &m.TotalAmount, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	grouped, err := r.entriesByParent(ctx, "transaction_entries", "transaction_id", []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn := toDomainTransaction(m, grouped[transactionID])
	return &txn, nil
}

// ListTransactions retrieves transactions with entries whose date falls in
// [start, end] inclusive, oldest first. Nil bounds are unrestricted.
func (r *PgxJournalRepository) ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, number, date, description, total_amount, created_at
		FROM transactions
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	headers := []models.Transaction{}
	ids := []string{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.Number, &m.Date, &m.Description, &m.TotalAmount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.TransactionID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	grouped, err := r.entriesByParent(ctx, "transaction_entries", "transaction_id", ids)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, len(headers))
	for i, m := range headers {
		transactions[i] = toDomainTransaction(m, grouped[m.TransactionID])
	}
	return transactions, nil
}

// ListTransactionsPaged retrieves a page of transactions, newest first, using
// a (date, created_at) keyset cursor.
func (r *PgxJournalRepository) ListTransactionsPaged(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{limit + 1}
	cursor := ""
	if nextToken != nil && *nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = `WHERE (date, created_at) < ($2, $3)`
		args = append(args, date, createdAt)
	}

	query := fmt.Sprintf(`
		SELECT transaction_id, number, date, description, total_amount, created_at
		FROM transactions
		%s
		ORDER BY date DESC, created_at DESC
		LIMIT $1;
	`, cursor)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transaction page: %w", err)
	}
	defer rows.Close()

	headers := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.Number, &m.Date, &m.Description, &m.TotalAmount, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		headers = append(headers, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	// The extra row only signals that another page exists.
	var token *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[len(headers)-1]
		encoded := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &encoded
	}

	ids := make([]string, len(headers))
	for i, m := range headers {
		ids[i] = m.TransactionID
	}
	grouped, err := r.entriesByParent(ctx, "transaction_entries", "transaction_id", ids)
	if err != nil {
		return nil, nil, err
	}

	transactions := make([]domain.Transaction, len(headers))
	for i, m := range headers {
		transactions[i] = toDomainTransaction(m, grouped[m.TransactionID])
	}
	return transactions, token, nil
}

// SaveTransaction persists the transaction header only.
func (r *PgxJournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, number, date, description, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID, txn.Number, txn.Date, txn.Description, txn.TotalAmount, txn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// SaveTransactionEntries persists the entries of a transaction in one batch.
func (r *PgxJournalRepository) SaveTransactionEntries(ctx context.Context, transactionID string, entries []domain.JournalEntry) error {
	return r.saveEntries(ctx, "transaction_entries", "transaction_id", transactionID, entries)
}

func (r *PgxJournalRepository) saveEntries(ctx context.Context, table, parentCol, parentID string, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (entry_id, %s, account_code, side, amount, note)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, table, parentCol)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(query, entry.EntryID, parentID, entry.AccountCode, string(entry.Side), entry.Amount, entry.Note)
	}

	br := r.pool.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to save entry %s: %w", entries[i].EntryID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close entry batch: %w", err)
	}
	return batchErr
}

// DeleteTransaction removes a transaction; the entries cascade via FK.
func (r *PgxJournalRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListAdjustingJournals retrieves adjusting journals with entries, optionally
// filtered to one period.
func (r *PgxJournalRepository) ListAdjustingJournals(ctx context.Context, period string) ([]domain.AdjustingJournal, error) {
	query := `
		SELECT journal_id, number, period, date, description, total_amount, created_at
		FROM adjusting_journals
		WHERE ($1 = '' OR period = $1)
		ORDER BY date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjusting journals: %w", err)
	}
	defer rows.Close()

	headers := []models.AdjustingJournal{}
	ids := []string{}
	for rows.Next() {
		var m models.AdjustingJournal
		if err := rows.Scan(&m.JournalID, &m.Number, &m.Period, &m.Date, &m.Description, &m.TotalAmount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adjusting journal row: %w", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.JournalID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating adjusting journal rows: %w", rows.Err())
	}

	grouped, err := r.entriesByParent(ctx, "adjusting_entries", "journal_id", ids)
	if err != nil {
		return nil, err
	}

	journals := make([]domain.AdjustingJournal, len(headers))
	for i, m := range headers {
		journals[i] = toDomainAdjustingJournal(m, grouped[m.JournalID])
	}
	return journals, nil
}

// SaveAdjustingJournal persists the adjusting journal header only.
func (r *PgxJournalRepository) SaveAdjustingJournal(ctx context.Context, journal domain.AdjustingJournal) error {
	query := `
		INSERT INTO adjusting_journals (journal_id, number, period, date, description, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		journal.JournalID, journal.Number, journal.Period, journal.Date, journal.Description, journal.TotalAmount, journal.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: adjusting journal %s already exists", apperrors.ErrDuplicate, journal.JournalID)
		}
		return fmt.Errorf("failed to save adjusting journal %s: %w", journal.JournalID, err)
	}
	return nil
}

// SaveAdjustingJournalEntries persists the entries of an adjusting journal.
func (r *PgxJournalRepository) SaveAdjustingJournalEntries(ctx context.Context, journalID string, entries []domain.JournalEntry) error {
	return r.saveEntries(ctx, "adjusting_entries", "journal_id", journalID, entries)
}

// DeleteAdjustingJournal removes an adjusting journal; entries cascade via FK.
func (r *PgxJournalRepository) DeleteAdjustingJournal(ctx context.Context, journalID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM adjusting_journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return fmt.Errorf("failed to delete adjusting journal %s: %w", journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
