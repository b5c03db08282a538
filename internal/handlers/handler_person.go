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

// personHandler handles HTTP requests related to people (workers and suppliers).
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{
		personService: ps,
	}
}

// registerPersonRoutes registers routes related to people.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := newPersonHandler(personService)

	people := rg.Group("/people")
	{
		people.POST("", h.createPerson)
		people.GET("", h.listPeople)
		people.DELETE("/:id", h.deletePerson)
	}
}

// createPerson godoc
// @Summary Create a new person
// @Description Registers a worker or supplier for the logged-in user.
// @Tags people
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Person already exists"
// @Failure 500 {object} map[string]string "Failed to create person"
// @Security BearerAuth
// @Router /people [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating person", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A person with this name already exists"})
		} else {
			logger.Error("Failed to create person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// listPeople godoc
// @Summary List people
// @Description Lists every person registered by the logged-in user, sorted by name.
// @Tags people
// @Produce  json
// @Success 200 {object} dto.ListPeopleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list people"
// @Security BearerAuth
// @Router /people [get]
func (h *personHandler) listPeople(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	people, err := h.personService.ListPeople(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBackendNotReady) {
			c.JSON(http.StatusOK, dto.ToListPeopleResponse(nil, true))
			return
		}
		logger.Error("Failed to list people", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list people"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPeopleResponse(people, false))
}

// deletePerson godoc
// @Summary Delete a person
// @Description Deletes a person record. Their transactions are untouched.
// @Tags people
// @Produce  json
// @Param   id path string true "Person ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to delete person"
// @Security BearerAuth
// @Router /people/{id} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), userID, personID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else {
			logger.Error("Failed to delete person", slog.String("error", err.Error()), slog.String("person_id", personID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
