package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/dto"
	"github.com/wiradata/bukubesar_app/internal/middleware"
	"github.com/wiradata/bukubesar_app/internal/utils/accounting"
)

// journalService provides general journal and adjusting journal operations.
type journalService struct {
	journalRepo portsrepo.JournalRepository
}

// NewJournalService creates a new JournalSvc.
func NewJournalService(journalRepo portsrepo.JournalRepository) portssvc.JournalSvc {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvc = (*journalService)(nil)

// journalNumber generates a journal number like "JNL-1735689600-0421".
func journalNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, now.Unix(), rand.Intn(10000))
}

func toDomainEntries(entries []dto.EntryRequest) []domain.JournalEntry {
	domainEntries := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		domainEntries[i] = domain.JournalEntry{
			EntryID:     uuid.NewString(),
			AccountCode: e.AccountCode,
			Side:        e.Side,
			Amount:      e.Amount,
			Note:        e.Note,
		}
	}
	return domainEntries
}

// CreateTransaction validates and persists a general journal transaction.
// The parent header and the entries are written separately; if the entries
// fail, the header is removed again by a compensating delete.
func (s *journalService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	entries := toDomainEntries(req.Entries)
	if err := accounting.ValidateEntries(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Number:        journalNumber("JNL", now),
		Date:          req.Date,
		Description:   req.Description,
		TotalAmount:   accounting.DebitTotal(entries),
		Entries:       entries,
		CreatedAt:     now,
	}

	if err := s.journalRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction header", slog.String("error", err.Error()), slog.String("number", txn.Number))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := s.journalRepo.SaveTransactionEntries(ctx, txn.TransactionID, entries); err != nil {
		logger.Error("Failed to save transaction entries, rolling back header", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		if derr := s.journalRepo.DeleteTransaction(ctx, txn.TransactionID); derr != nil {
			logger.Error("Compensating delete of transaction header failed", slog.String("error", derr.Error()), slog.String("transaction_id", txn.TransactionID))
		}
		return nil, fmt.Errorf("failed to save transaction entries: %w", err)
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID), slog.String("number", txn.Number))
	return &txn, nil
}

// GetTransactionByID retrieves a transaction with its entries.
func (s *journalService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.journalRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of transactions using token pagination.
func (s *journalService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	transactions, nextToken, err := s.journalRepo.ListTransactionsPaged(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

// DeleteTransaction removes a transaction and all its entries.
func (s *journalService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.journalRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// CreateAdjustingJournal validates and persists an adjusting journal tagged
// with its reporting period, with the same rollback behavior as
// CreateTransaction.
func (s *journalService) CreateAdjustingJournal(ctx context.Context, req dto.CreateAdjustingJournalRequest) (*domain.AdjustingJournal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if _, err := domain.ParsePeriod(req.Period); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	entries := toDomainEntries(req.Entries)
	if err := accounting.ValidateEntries(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	journal := domain.AdjustingJournal{
		JournalID:   uuid.NewString(),
		Number:      journalNumber("ADJ", now),
		Period:      req.Period,
		Date:        req.Date,
		Description: req.Description,
		TotalAmount: accounting.DebitTotal(entries),
		Entries:     entries,
		CreatedAt:   now,
	}

	if err := s.journalRepo.SaveAdjustingJournal(ctx, journal); err != nil {
		logger.Error("Failed to save adjusting journal header", slog.String("error", err.Error()), slog.String("number", journal.Number))
		return nil, fmt.Errorf("failed to save adjusting journal: %w", err)
	}

	if err := s.journalRepo.SaveAdjustingJournalEntries(ctx, journal.JournalID, entries); err != nil {
		logger.Error("Failed to save adjusting journal entries, rolling back header", slog.String("error", err.Error()), slog.String("journal_id", journal.JournalID))
		if derr := s.journalRepo.DeleteAdjustingJournal(ctx, journal.JournalID); derr != nil {
			logger.Error("Compensating delete of adjusting journal header failed", slog.String("error", derr.Error()), slog.String("journal_id", journal.JournalID))
		}
		return nil, fmt.Errorf("failed to save adjusting journal entries: %w", err)
	}

	logger.Info("Adjusting journal created successfully", slog.String("journal_id", journal.JournalID), slog.String("period", journal.Period))
	return &journal, nil
}

// ListAdjustingJournals retrieves adjusting journals, optionally for one period.
func (s *journalService) ListAdjustingJournals(ctx context.Context, period string) ([]domain.AdjustingJournal, error) {
	if period != "" {
		if _, err := domain.ParsePeriod(period); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	journals, err := s.journalRepo.ListAdjustingJournals(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve adjusting journals: %w", err)
	}
	return journals, nil
}

// DeleteAdjustingJournal removes an adjusting journal and its entries.
func (s *journalService) DeleteAdjustingJournal(ctx context.Context, journalID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.journalRepo.DeleteAdjustingJournal(ctx, journalID); err != nil {
		return fmt.Errorf("failed to delete adjusting journal %s: %w", journalID, err)
	}
	logger.Info("Adjusting journal deleted", slog.String("journal_id", journalID))
	return nil
}
