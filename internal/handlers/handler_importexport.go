package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/middleware"

	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// spreadsheetHandler handles xlsx import and export requests.
type spreadsheetHandler struct {
	spreadsheetService portssvc.SpreadsheetSvcFacade
}

func newSpreadsheetHandler(ss portssvc.SpreadsheetSvcFacade) *spreadsheetHandler {
	return &spreadsheetHandler{
		spreadsheetService: ss,
	}
}

// registerSpreadsheetRoutes registers the import/export routes.
func registerSpreadsheetRoutes(rg *gin.RouterGroup, spreadsheetService portssvc.SpreadsheetSvcFacade) {
	h := newSpreadsheetHandler(spreadsheetService)

	rg.POST("/import", h.importWorkbook)
	rg.GET("/import/template", h.downloadTemplate)
	rg.GET("/export", h.exportAllTransactions)
	rg.GET("/export/person/:name", h.exportPersonReport)
}

// importWorkbook godoc
// @Summary Import data from an xlsx workbook
// @Description Reads People, Sites and Transactions sheets from the uploaded file. Bad rows are reported and skipped; duplicates of existing records are silently ignored.
// @Tags import-export
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Workbook to import"
// @Success 200 {object} dto.ImportReport
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to import workbook"
// @Security BearerAuth
// @Router /import [post]
func (h *spreadsheetHandler) importWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file upload named 'file' is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}
	defer file.Close()

	report, err := h.spreadsheetService.ImportWorkbook(c.Request.Context(), userID, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The uploaded file is not a valid xlsx workbook"})
			return
		}
		logger.Error("Failed to import workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import workbook"})
		return
	}

	logger.Info("Workbook imported",
		slog.Int("people_added", report.PeopleAdded),
		slog.Int("sites_added", report.SitesAdded),
		slog.Int("transactions_added", report.TransactionsAdded),
		slog.Int("duplicates_skipped", report.DuplicatesSkipped),
		slog.Int("row_errors", len(report.RowErrors)))
	c.JSON(http.StatusOK, report)
}

// downloadTemplate godoc
// @Summary Download the import template workbook
// @Description Returns an xlsx workbook with the expected sheets, headers, and example rows.
// @Tags import-export
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build template"
// @Security BearerAuth
// @Router /import/template [get]
func (h *spreadsheetHandler) downloadTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.spreadsheetService.BuildTemplate(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build import template", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
		return
	}

	serveWorkbook(c, "import_template.xlsx", data)
}

// exportAllTransactions godoc
// @Summary Export every transaction as an xlsx workbook
// @Description Returns a workbook with one row per transaction, newest first.
// @Tags import-export
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Security BearerAuth
// @Router /export [get]
func (h *spreadsheetHandler) exportAllTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	data, err := h.spreadsheetService.ExportAllTransactions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to export transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	name := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("2006-01-02"))
	serveWorkbook(c, name, data)
}

// exportPersonReport godoc
// @Summary Export one person's report as an xlsx workbook
// @Description Returns a two-sheet workbook: a summary of the person's totals and the detail of their transactions.
// @Tags import-export
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   name path string true "Person name"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No transactions for this person"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Security BearerAuth
// @Router /export/person/{name} [get]
func (h *spreadsheetHandler) exportPersonReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personName := c.Param("name")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	data, err := h.spreadsheetService.ExportPersonReport(c.Request.Context(), userID, personName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No transactions found for this person"})
			return
		}
		logger.Error("Failed to export person report", slog.String("error", err.Error()), slog.String("person_name", personName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}

	name := fmt.Sprintf("%s_report_%s.xlsx", personName, time.Now().Format("2006-01-02"))
	serveWorkbook(c, name, data)
}

// serveWorkbook streams workbook bytes as an attachment download.
func serveWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, data)
}
