package dto

import (
	"time"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
)

// CreateAccountRequest defines the input for creating a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code               string                     `json:"code" binding:"required"`
	Name               string                     `json:"name" binding:"required"`
	Type               domain.AccountType         `json:"type" binding:"required,oneof=CURRENT_ASSET FIXED_ASSET OTHER_ASSET LIABILITY EQUITY REVENUE COGS EXPENSE"`
	Category           string                     `json:"category"`
	ClassificationHint domain.IncomeStatementRole `json:"classificationHint" binding:"omitempty,oneof=REVENUE COGS EXPENSE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code               string                     `json:"code"`
	Name               string                     `json:"name"`
	Type               domain.AccountType         `json:"type"`
	Category           string                     `json:"category"`
	ClassificationHint domain.IncomeStatementRole `json:"classificationHint,omitempty"`
	CreatedAt          time.Time                  `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Code:               a.Code,
		Name:               a.Name,
		Type:               a.Type,
		Category:           a.Category,
		ClassificationHint: a.ClassificationHint,
		CreatedAt:          a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
