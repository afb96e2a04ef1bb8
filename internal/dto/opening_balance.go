package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
	"github.com/wiradata/bukubesar_app/internal/utils"
)

// UpsertOpeningBalanceRequest sets (or overwrites) an account's opening balance.
type UpsertOpeningBalanceRequest struct {
	AccountCode string           `json:"accountCode" binding:"required"`
	Side        domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Description string           `json:"description"`
}

// OpeningBalanceResponse defines the data returned for an opening balance.
type OpeningBalanceResponse struct {
	AccountCode     string           `json:"accountCode"`
	Side            domain.EntrySide `json:"side"`
	Amount          decimal.Decimal  `json:"amount"`
	AmountFormatted string           `json:"amountFormatted"`
	Description     string           `json:"description"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ToOpeningBalanceResponse converts a domain.OpeningBalance to its DTO.
func ToOpeningBalanceResponse(ob *domain.OpeningBalance) OpeningBalanceResponse {
	return OpeningBalanceResponse{
		AccountCode:     ob.AccountCode,
		Side:            ob.Side,
		Amount:          ob.Amount,
		AmountFormatted: utils.FormatRupiah(ob.Amount),
		Description:     ob.Description,
		CreatedAt:       ob.CreatedAt,
	}
}

// ToOpeningBalanceResponses converts a slice of opening balances to DTOs.
func ToOpeningBalanceResponses(obs []domain.OpeningBalance) []OpeningBalanceResponse {
	responses := make([]OpeningBalanceResponse, len(obs))
	for i := range obs {
		responses[i] = ToOpeningBalanceResponse(&obs[i])
	}
	return responses
}
