package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkshopHandler handles HTTP requests for workshop operations
type WorkshopHandler struct {
	workshopService service.WorkshopServiceInterface
}

// NewWorkshopHandler creates a new workshop handler
func NewWorkshopHandler(workshopService service.WorkshopServiceInterface) *WorkshopHandler {
	return &WorkshopHandler{
		workshopService: workshopService,
	}
}

// ListWorkshops handles GET /workshops
// @Summary List workshops
// @Description Get all workshops, optionally filtered by base and name search
// @Tags workshops
// @Accept json
// @Produce json
// @Param baseId query int false "Filter by base ID"
// @Param search query string false "Name substring filter"
// @Success 200 {array} service.WorkshopResponse "Successfully retrieved workshops"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workshops [get]
func (h *WorkshopHandler) ListWorkshops(c *gin.Context) {
	baseID, err := parseUintQuery(c, "baseId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workshops, err := h.workshopService.List(baseID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workshops)
}

// CreateWorkshop handles POST /workshops
// @Summary Create a new workshop
// @Description Create a new workshop within an existing base
// @Tags workshops
// @Accept json
// @Produce json
// @Param workshop body service.CreateWorkshopRequest true "Workshop data"
// @Success 201 {object} service.WorkshopResponse "Successfully created workshop"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Base not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workshops [post]
func (h *WorkshopHandler) CreateWorkshop(c *gin.Context) {
	var req service.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workshop, err := h.workshopService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrBaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, workshop)
}

// GetWorkshop handles GET /workshops/:id
// @Summary Get workshop by ID
// @Description Get a specific workshop by its ID
// @Tags workshops
// @Accept json
// @Produce json
// @Param id path int true "Workshop ID"
// @Success 200 {object} service.WorkshopResponse "Successfully retrieved workshop"
// @Failure 400 {object} map[string]interface{} "Invalid workshop ID"
// @Failure 404 {object} map[string]interface{} "Workshop not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workshops/{id} [get]
func (h *WorkshopHandler) GetWorkshop(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workshop, err := h.workshopService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkshopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// UpdateWorkshop handles PUT /workshops/:id
// @Summary Update workshop
// @Description Update an existing workshop by ID
// @Tags workshops
// @Accept json
// @Produce json
// @Param id path int true "Workshop ID"
// @Param workshop body service.UpdateWorkshopRequest true "Updated workshop data"
// @Success 200 {object} service.WorkshopResponse "Successfully updated workshop"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Workshop or base not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workshops/{id} [put]
func (h *WorkshopHandler) UpdateWorkshop(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workshop, err := h.workshopService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrWorkshopNotFound) || errors.Is(err, apperrors.ErrBaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// DeleteWorkshop handles DELETE /workshops/:id
// @Summary Delete workshop
// @Description Delete a workshop by ID; fails while equipment still references it
// @Tags workshops
// @Accept json
// @Produce json
// @Param id path int true "Workshop ID"
// @Success 204 "Successfully deleted workshop"
// @Failure 400 {object} map[string]interface{} "Invalid workshop ID"
// @Failure 404 {object} map[string]interface{} "Workshop not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workshops/{id} [delete]
func (h *WorkshopHandler) DeleteWorkshop(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.workshopService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrWorkshopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
