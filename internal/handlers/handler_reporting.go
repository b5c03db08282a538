package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-ledger/ledger-backend/internal/middleware"

	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
)

// reportingHandler handles HTTP requests for ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance", h.getBalanceReport)
		reports.GET("/people", h.getPeopleReport)
		reports.GET("/suppliers", h.getSupplierReport)
		reports.GET("/sites", h.getSiteReport)
	}
}

// getBalanceReport godoc
// @Summary Get the global balance report
// @Description Returns total money in, money out, and net balance across the whole ledger.
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/balance [get]
func (h *reportingHandler) getBalanceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetBalanceReport(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getPeopleReport godoc
// @Summary Get per-person summaries
// @Description Groups transactions by exact person name. An optional query filters names case-insensitively; search totals cover the matched set.
// @Tags reports
// @Produce  json
// @Param   query query string false "Substring name filter"
// @Success 200 {object} dto.PeopleReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/people [get]
func (h *reportingHandler) getPeopleReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetPeopleReport(c.Request.Context(), userID, c.Query("query"))
	if err != nil {
		logger.Error("Failed to build people report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getSupplierReport godoc
// @Summary Get supplier summaries
// @Description Groups supplier transactions by the business name before the first slash, so per-site deliveries roll up under one supplier.
// @Tags reports
// @Produce  json
// @Param   query query string false "Substring name filter"
// @Success 200 {object} dto.PeopleReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/suppliers [get]
func (h *reportingHandler) getSupplierReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetSupplierReport(c.Request.Context(), userID, c.Query("query"))
	if err != nil {
		logger.Error("Failed to build supplier report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getSiteReport godoc
// @Summary Get per-site budget summaries
// @Description Returns spending and budget usage per site plus an uncategorized bucket for untagged transactions.
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SiteReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/sites [get]
func (h *reportingHandler) getSiteReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetSiteReport(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build site report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
