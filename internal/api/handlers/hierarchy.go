package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HierarchyHandler handles HTTP requests for the registry tree views
type HierarchyHandler struct {
	hierarchyService service.HierarchyServiceInterface
}

// NewHierarchyHandler creates a new hierarchy handler
func NewHierarchyHandler(hierarchyService service.HierarchyServiceInterface) *HierarchyHandler {
	return &HierarchyHandler{
		hierarchyService: hierarchyService,
	}
}

// GetBaseTree handles GET /hierarchy/base/:id
// @Summary Get base hierarchy tree
// @Description Get the base with its workshops and their equipment as a nested tree
// @Tags hierarchy
// @Accept json
// @Produce json
// @Param id path int true "Base ID"
// @Success 200 {object} service.BaseTreeResponse "Successfully retrieved base tree"
// @Failure 400 {object} map[string]interface{} "Invalid base ID"
// @Failure 404 {object} map[string]interface{} "Base not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hierarchy/base/{id} [get]
func (h *HierarchyHandler) GetBaseTree(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tree, err := h.hierarchyService.BaseTree(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tree)
}

// GetEquipmentTree handles GET /hierarchy/equipment/:id
// @Summary Get equipment hierarchy tree
// @Description Get the equipment with its components and their spare parts as a nested tree
// @Tags hierarchy
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} service.EquipmentTreeResponse "Successfully retrieved equipment tree"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hierarchy/equipment/{id} [get]
func (h *HierarchyHandler) GetEquipmentTree(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tree, err := h.hierarchyService.EquipmentTree(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tree)
}
