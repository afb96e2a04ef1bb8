package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wiradata/bukubesar_app/internal/apperrors"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/dto"
	"github.com/wiradata/bukubesar_app/internal/middleware"
)

// openingBalanceHandler handles HTTP requests for opening balances.
type openingBalanceHandler struct {
	obService portssvc.OpeningBalanceSvc
}

func newOpeningBalanceHandler(obs portssvc.OpeningBalanceSvc) *openingBalanceHandler {
	return &openingBalanceHandler{obService: obs}
}

// registerOpeningBalanceRoutes registers routes related to opening balances.
func registerOpeningBalanceRoutes(rg *gin.RouterGroup, obService portssvc.OpeningBalanceSvc) {
	h := newOpeningBalanceHandler(obService)

	balances := rg.Group("/opening-balances")
	{
		balances.PUT("", h.upsertOpeningBalance)
		balances.GET("", h.listOpeningBalances)
		balances.DELETE("/:code", h.deleteOpeningBalance)
	}
}

// upsertOpeningBalance godoc
// @Summary Set an account's opening balance
// @Description Sets the opening balance for an account, overwriting any earlier one
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   balance body dto.UpsertOpeningBalanceRequest true "Opening balance details"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to save opening balance"
// @Router /opening-balances [put]
func (h *openingBalanceHandler) upsertOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ob, err := h.obService.UpsertOpeningBalance(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert opening balance", slog.String("error", err.Error()), slog.String("account_code", req.AccountCode))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save opening balance"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponse(ob))
}

// listOpeningBalances godoc
// @Summary List opening balances
// @Description Retrieves all opening balances sorted by account code
// @Tags opening-balances
// @Produce  json
// @Success 200 {array} dto.OpeningBalanceResponse
// @Failure 500 {object} map[string]string "Failed to retrieve opening balances"
// @Router /opening-balances [get]
func (h *openingBalanceHandler) listOpeningBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.obService.ListOpeningBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list opening balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opening balances"})
		return
	}
	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponses(balances))
}

// deleteOpeningBalance godoc
// @Summary Delete an account's opening balance
// @Tags opening-balances
// @Produce  json
// @Param   code path string true "Account code"
// @Success 204 "Opening balance deleted"
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to delete opening balance"
// @Router /opening-balances/{code} [delete]
func (h *openingBalanceHandler) deleteOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	err := h.obService.DeleteOpeningBalance(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opening balance not found"})
		} else {
			logger.Error("Failed to delete opening balance", slog.String("error", err.Error()), slog.String("account_code", code))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete opening balance"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
