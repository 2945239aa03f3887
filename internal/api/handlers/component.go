package handlers

import (
	"errors"
	"net/http"
	"strings"

	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for component operations
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// parseImportanceLevels splits a comma-separated importanceLevel parameter
func parseImportanceLevels(raw string) []models.ImportanceLevel {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	levels := make([]models.ImportanceLevel, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		levels = append(levels, models.ImportanceLevel(part))
	}
	return levels
}

// ListComponents handles GET /components
// @Summary List components
// @Description Get all components, optionally filtered by type, importance levels and name search
// @Tags components
// @Accept json
// @Produce json
// @Param typeId query int false "Filter by equipment type ID"
// @Param importanceLevel query string false "Comma-separated importance levels (A,B,C)"
// @Param search query string false "Name substring filter"
// @Success 200 {array} service.ComponentResponse "Successfully retrieved components"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	typeID, err := parseUintQuery(c, "typeId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	components, err := h.componentService.List(typeID, parseImportanceLevels(c.Query("importanceLevel")), c.Query("search"))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, components)
}

// CreateComponent handles POST /components
// @Summary Create a new component
// @Description Create a new component classified under an existing equipment type
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} service.ComponentResponse "Successfully created component"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEquipmentTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, component)
}

// GetComponent handles GET /components/:id
// @Summary Get component by ID
// @Description Get a specific component by its ID
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} service.ComponentResponse "Successfully retrieved component"
// @Failure 400 {object} map[string]interface{} "Invalid component ID"
// @Failure 404 {object} map[string]interface{} "Component not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, component)
}

// UpdateComponent handles PUT /components/:id
// @Summary Update component
// @Description Update an existing component by ID
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param component body service.UpdateComponentRequest true "Updated component data"
// @Success 200 {object} service.ComponentResponse "Successfully updated component"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Component or equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrComponentNotFound) || errors.Is(err, apperrors.ErrEquipmentTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete component
// @Description Delete a component by ID; fails while associations still reference it
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Success 204 "Successfully deleted component"
// @Failure 400 {object} map[string]interface{} "Invalid component ID"
// @Failure 404 {object} map[string]interface{} "Component not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.componentService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
