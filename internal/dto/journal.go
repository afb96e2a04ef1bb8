package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	"github.com/wiradata/bukubesar_app/internal/utils"
)

// EntryRequest is one posting line of a transaction or adjusting journal.
type EntryRequest struct {
	AccountCode string           `json:"accountCode" binding:"required"`
	Side        domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Note        string           `json:"note"`
}

// CreateTransactionRequest defines the input for recording a transaction.
type CreateTransactionRequest struct {
	Date        time.Time      `json:"date" binding:"required" time_format:"2006-01-02"`
	Description string         `json:"description" binding:"required"`
	Entries     []EntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// CreateAdjustingJournalRequest defines the input for an adjusting journal.
type CreateAdjustingJournalRequest struct {
	Period      string         `json:"period" binding:"required"` // "YYYY-MM"
	Date        time.Time      `json:"date" binding:"required" time_format:"2006-01-02"`
	Description string         `json:"description" binding:"required"`
	Entries     []EntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// EntryResponse defines the data returned for a single posting line.
type EntryResponse struct {
	AccountCode string           `json:"accountCode"`
	Side        domain.EntrySide `json:"side"`
	Amount      decimal.Decimal  `json:"amount"`
	Note        string           `json:"note,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	Number               string          `json:"number"`
	Date                 time.Time       `json:"date"`
	Description          string          `json:"description"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TotalAmountFormatted string          `json:"totalAmountFormatted"`
	Entries              []EntryResponse `json:"entries,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// AdjustingJournalResponse defines the data returned for an adjusting journal.
type AdjustingJournalResponse struct {
	JournalID            string          `json:"journalID"`
	Number               string          `json:"number"`
	Period               string          `json:"period"`
	Date                 time.Time       `json:"date"`
	Description          string          `json:"description"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TotalAmountFormatted string          `json:"totalAmountFormatted"`
	Entries              []EntryResponse `json:"entries,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ListTransactionsParams holds parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions with the next-page token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func toEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = EntryResponse{
			AccountCode: e.AccountCode,
			Side:        e.Side,
			Amount:      e.Amount,
			Note:        e.Note,
		}
	}
	return responses
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		Number:               t.Number,
		Date:                 t.Date,
		Description:          t.Description,
		TotalAmount:          t.TotalAmount,
		TotalAmountFormatted: utils.FormatRupiah(t.TotalAmount),
		Entries:              toEntryResponses(t.Entries),
		CreatedAt:            t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToAdjustingJournalResponse converts a domain.AdjustingJournal to its DTO.
func ToAdjustingJournalResponse(j *domain.AdjustingJournal) AdjustingJournalResponse {
	return AdjustingJournalResponse{
		JournalID:            j.JournalID,
		Number:               j.Number,
		Period:               j.Period,
		Date:                 j.Date,
		Description:          j.Description,
		TotalAmount:          j.TotalAmount,
		TotalAmountFormatted: utils.FormatRupiah(j.TotalAmount),
		Entries:              toEntryResponses(j.Entries),
		CreatedAt:            j.CreatedAt,
	}
}

// ToAdjustingJournalResponses converts a slice of adjusting journals to DTOs.
func ToAdjustingJournalResponses(journals []domain.AdjustingJournal) []AdjustingJournalResponse {
	responses := make([]AdjustingJournalResponse, len(journals))
	for i := range journals {
		responses[i] = ToAdjustingJournalResponse(&journals[i])
	}
	return responses
}
