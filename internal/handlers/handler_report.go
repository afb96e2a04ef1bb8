package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wiradata/bukubesar_app/internal/core/domain"
	portssvc "github.com/wiradata/bukubesar_app/internal/core/ports/services"
	"github.com/wiradata/bukubesar_app/internal/middleware"
)

// reportHandler exposes the derivation pipeline: ledger, trial balances,
// worksheet, statements and the period-end close. Every endpoint takes a
// ?period=YYYY-MM query parameter and always answers 200 with a well-formed
// report; an unbalanced result is flagged inside the report body.
type reportHandler struct {
	ledgerService    portssvc.LedgerSvc
	reportingService portssvc.ReportingSvc
	statementService portssvc.StatementSvc
	closingService   portssvc.ClosingSvc
}

func newReportHandler(ls portssvc.LedgerSvc, rs portssvc.ReportingSvc, ss portssvc.StatementSvc, cs portssvc.ClosingSvc) *reportHandler {
	return &reportHandler{
		ledgerService:    ls,
		reportingService: rs,
		statementService: ss,
		closingService:   cs,
	}
}

// registerReportRoutes registers the report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvc, rs portssvc.ReportingSvc, ss portssvc.StatementSvc, cs portssvc.ClosingSvc) {
	h := newReportHandler(ls, rs, ss, cs)

	reports := rg.Group("/reports")
	{
		reports.GET("/ledger", h.getLedger)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/adjusted-trial-balance", h.getAdjustedTrialBalance)
		reports.GET("/worksheet", h.getWorksheet)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/equity-statement", h.getEquityStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/closing-entries", h.getClosingEntries)
		reports.GET("/post-closing-trial-balance", h.getPostClosingTrialBalance)
	}
}

// periodFromQuery parses the required ?period query parameter. On failure it
// writes the 400 response itself and reports false.
func periodFromQuery(c *gin.Context) (domain.Period, bool) {
	raw := c.Query("period")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period query parameter is required (YYYY-MM)"})
		return domain.Period{}, false
	}
	period, err := domain.ParsePeriod(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Period{}, false
	}
	return period, true
}

func (h *reportHandler) respond(c *gin.Context, report any, err error, kind string) {
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to compute report", slog.String("report", kind), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute " + kind})
		return
	}
	c.JSON(http.StatusOK, report)
}

// getLedger godoc
// @Summary General ledger
// @Description Per-account ledgers with running balances for the period
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Param   account query string false "Restrict to one account code"
// @Success 200 {object} domain.LedgerReport
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/ledger [get]
func (h *reportHandler) getLedger(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.ledgerService.ComputeLedger(c.Request.Context(), period, c.Query("account"))
	h.respond(c, report, err, "ledger")
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Pre-adjustment trial balance for the period
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.TrialBalance
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/trial-balance [get]
func (h *reportHandler) getTrialBalance(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.ComputeTrialBalance(c.Request.Context(), period)
	h.respond(c, report, err, "trial balance")
}

// getAdjustedTrialBalance godoc
// @Summary Adjusted trial balance
// @Description Trial balance with the period's adjusting journals applied
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.AdjustedTrialBalance
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/adjusted-trial-balance [get]
func (h *reportHandler) getAdjustedTrialBalance(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.ComputeAdjustedTrialBalance(c.Request.Context(), period)
	h.respond(c, report, err, "adjusted trial balance")
}

// getWorksheet godoc
// @Summary Ten-column worksheet
// @Description Worksheet spreading each account across trial balance, adjustment, adjusted, income statement and balance sheet columns
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.Worksheet
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/worksheet [get]
func (h *reportHandler) getWorksheet(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.ComputeWorksheet(c.Request.Context(), period)
	h.respond(c, report, err, "worksheet")
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Revenue, cost of goods sold, expenses and net income for the period
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.IncomeStatement
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/income-statement [get]
func (h *reportHandler) getIncomeStatement(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.statementService.ComputeIncomeStatement(c.Request.Context(), period)
	h.respond(c, report, err, "income statement")
}

// getEquityStatement godoc
// @Summary Statement of changes in equity
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.EquityStatement
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/equity-statement [get]
func (h *reportHandler) getEquityStatement(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.statementService.ComputeEquityStatement(c.Request.Context(), period)
	h.respond(c, report, err, "equity statement")
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity as of period end, with accumulated depreciation as a contra section
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.BalanceSheet
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/balance-sheet [get]
func (h *reportHandler) getBalanceSheet(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.statementService.ComputeBalanceSheet(c.Request.Context(), period)
	h.respond(c, report, err, "balance sheet")
}

// getCashFlow godoc
// @Summary Cash flow statement
// @Description Operating cash receipts and payments derived from cash-account postings
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.CashFlowStatement
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/cash-flow [get]
func (h *reportHandler) getCashFlow(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.statementService.ComputeCashFlow(c.Request.Context(), period)
	h.respond(c, report, err, "cash flow statement")
}

// getClosingEntries godoc
// @Summary Closing entries
// @Description Derived three-step closing journal for the period
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.ClosingEntries
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/closing-entries [get]
func (h *reportHandler) getClosingEntries(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.closingService.ComputeClosingEntries(c.Request.Context(), period)
	h.respond(c, report, err, "closing entries")
}

// getPostClosingTrialBalance godoc
// @Summary Post-closing trial balance
// @Description Trial balance after the close; only real accounts remain
// @Tags reports
// @Produce  json
// @Param   period query string true "Reporting period, YYYY-MM"
// @Success 200 {object} domain.PostClosingTrialBalance
// @Failure 400 {object} map[string]string "Missing or invalid period"
// @Router /reports/post-closing-trial-balance [get]
func (h *reportHandler) getPostClosingTrialBalance(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.closingService.ComputePostClosingTrialBalance(c.Request.Context(), period)
	h.respond(c, report, err, "post-closing trial balance")
}
