package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/dto"
	"github.com/smart-ledger/ledger-backend/internal/middleware"

	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
)

// siteHandler handles HTTP requests related to sites.
type siteHandler struct {
	siteService      portssvc.SiteSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newSiteHandler(ss portssvc.SiteSvcFacade, rs portssvc.ReportingSvcFacade) *siteHandler {
	return &siteHandler{
		siteService:      ss,
		reportingService: rs,
	}
}

// registerSiteRoutes registers routes related to sites.
func registerSiteRoutes(rg *gin.RouterGroup, siteService portssvc.SiteSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newSiteHandler(siteService, reportingService)

	sites := rg.Group("/sites")
	{
		sites.POST("", h.createSite)
		sites.GET("", h.listSites)
		sites.GET("/:id", h.getSite)
		sites.DELETE("/:id", h.deleteSite)
	}
}

// createSite godoc
// @Summary Create a new site
// @Description Creates a site with a strictly positive budget for the logged-in user.
// @Tags sites
// @Accept  json
// @Produce  json
// @Param   site body dto.CreateSiteRequest true "Site details"
// @Success 201 {object} dto.SiteResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Site name already exists"
// @Failure 500 {object} map[string]string "Failed to create site"
// @Security BearerAuth
// @Router /sites [post]
func (h *siteHandler) createSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	site, err := h.siteService.CreateSite(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating site", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A site with this name already exists"})
		} else {
			logger.Error("Failed to create site in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSiteResponse(site))
}

// listSites godoc
// @Summary List sites
// @Description Lists every site owned by the logged-in user, newest first.
// @Tags sites
// @Produce  json
// @Success 200 {object} dto.ListSitesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list sites"
// @Security BearerAuth
// @Router /sites [get]
func (h *siteHandler) listSites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sites, err := h.siteService.ListSites(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBackendNotReady) {
			c.JSON(http.StatusOK, dto.ToListSitesResponse(nil, true))
			return
		}
		logger.Error("Failed to list sites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSitesResponse(sites, false))
}

// getSite godoc
// @Summary Get a site with its balance summary
// @Description Retrieves a single site with spending totals and budget usage.
// @Tags sites
// @Produce  json
// @Param   id path string true "Site ID"
// @Success 200 {object} dto.SiteSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Site not found"
// @Failure 500 {object} map[string]string "Failed to retrieve site"
// @Security BearerAuth
// @Router /sites/{id} [get]
func (h *siteHandler) getSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.GetSiteSummary(c.Request.Context(), userID, siteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		} else {
			logger.Error("Failed to get site", slog.String("error", err.Error()), slog.String("site_id", siteID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve site"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// deleteSite godoc
// @Summary Delete a site
// @Description Deletes the site record only. Transactions attributed to the site keep their names and drop out of site reports.
// @Tags sites
// @Produce  json
// @Param   id path string true "Site ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Site not found"
// @Failure 500 {object} map[string]string "Failed to delete site"
// @Security BearerAuth
// @Router /sites/{id} [delete]
func (h *siteHandler) deleteSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.siteService.DeleteSite(c.Request.Context(), userID, siteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		} else {
			logger.Error("Failed to delete site", slog.String("error", err.Error()), slog.String("site_id", siteID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
