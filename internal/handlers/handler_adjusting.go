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

// adjustingHandler handles HTTP requests for adjusting journals.
type adjustingHandler struct {
	journalService portssvc.JournalSvc
}

func newAdjustingHandler(js portssvc.JournalSvc) *adjustingHandler {
	return &adjustingHandler{journalService: js}
}

// registerAdjustingRoutes registers routes related to adjusting journals.
func registerAdjustingRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvc) {
	h := newAdjustingHandler(journalService)

	adjusting := rg.Group("/adjusting-journals")
	{
		adjusting.POST("", h.createAdjustingJournal)
		adjusting.GET("", h.listAdjustingJournals)
		adjusting.DELETE("/:id", h.deleteAdjustingJournal)
	}
}

// createAdjustingJournal godoc
// @Summary Record an adjusting journal
// @Description Records a balanced adjusting journal tagged with its reporting period
// @Tags adjusting-journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateAdjustingJournalRequest true "Adjusting journal details"
// @Success 201 {object} dto.AdjustingJournalResponse
// @Failure 400 {object} map[string]string "Invalid input format, bad period or unbalanced entries"
// @Failure 500 {object} map[string]string "Failed to record adjusting journal"
// @Router /adjusting-journals [post]
func (h *adjustingHandler) createAdjustingJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAdjustingJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAdjustingJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	journal, err := h.journalService.CreateAdjustingJournal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create adjusting journal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record adjusting journal"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdjustingJournalResponse(journal))
}

// listAdjustingJournals godoc
// @Summary List adjusting journals
// @Description Retrieves adjusting journals, optionally filtered to one period
// @Tags adjusting-journals
// @Produce  json
// @Param   period query string false "Reporting period, YYYY-MM"
// @Success 200 {array} dto.AdjustingJournalResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to retrieve adjusting journals"
// @Router /adjusting-journals [get]
func (h *adjustingHandler) listAdjustingJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Query("period")

	journals, err := h.journalService.ListAdjustingJournals(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list adjusting journals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve adjusting journals"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAdjustingJournalResponses(journals))
}

// deleteAdjustingJournal godoc
// @Summary Delete an adjusting journal
// @Tags adjusting-journals
// @Produce  json
// @Param   id path string true "Adjusting journal ID"
// @Success 204 "Adjusting journal deleted"
// @Failure 404 {object} map[string]string "Adjusting journal not found"
// @Failure 500 {object} map[string]string "Failed to delete adjusting journal"
// @Router /adjusting-journals/{id} [delete]
func (h *adjustingHandler) deleteAdjustingJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	err := h.journalService.DeleteAdjustingJournal(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Adjusting journal not found"})
		} else {
			logger.Error("Failed to delete adjusting journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete adjusting journal"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
