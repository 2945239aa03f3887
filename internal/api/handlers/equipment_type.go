package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentTypeHandler handles HTTP requests for equipment type operations
type EquipmentTypeHandler struct {
	typeService service.EquipmentTypeServiceInterface
}

// NewEquipmentTypeHandler creates a new equipment type handler
func NewEquipmentTypeHandler(typeService service.EquipmentTypeServiceInterface) *EquipmentTypeHandler {
	return &EquipmentTypeHandler{
		typeService: typeService,
	}
}

// ListEquipmentTypes handles GET /equipment-types
// @Summary List equipment types
// @Description Get all equipment types, optionally filtered by a name search
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param search query string false "Name substring filter"
// @Success 200 {array} service.EquipmentTypeResponse "Successfully retrieved equipment types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types [get]
func (h *EquipmentTypeHandler) ListEquipmentTypes(c *gin.Context) {
	types, err := h.typeService.List(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateEquipmentType handles POST /equipment-types
// @Summary Create a new equipment type
// @Description Create a new equipment type
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param equipmentType body service.CreateEquipmentTypeRequest true "Equipment type data"
// @Success 201 {object} service.EquipmentTypeResponse "Successfully created equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types [post]
func (h *EquipmentTypeHandler) CreateEquipmentType(c *gin.Context) {
	var req service.CreateEquipmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipmentType, err := h.typeService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, equipmentType)
}

// GetEquipmentType handles GET /equipment-types/:id
// @Summary Get equipment type by ID
// @Description Get a specific equipment type by its ID
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param id path int true "Equipment type ID"
// @Success 200 {object} service.EquipmentTypeResponse "Successfully retrieved equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid equipment type ID"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types/{id} [get]
func (h *EquipmentTypeHandler) GetEquipmentType(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipmentType, err := h.typeService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipmentType)
}

// UpdateEquipmentType handles PUT /equipment-types/:id
// @Summary Update equipment type
// @Description Update an existing equipment type by ID
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param id path int true "Equipment type ID"
// @Param equipmentType body service.UpdateEquipmentTypeRequest true "Updated equipment type data"
// @Success 200 {object} service.EquipmentTypeResponse "Successfully updated equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types/{id} [put]
func (h *EquipmentTypeHandler) UpdateEquipmentType(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateEquipmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipmentType, err := h.typeService.Update(id, &req)
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

	c.JSON(http.StatusOK, equipmentType)
}

// DeleteEquipmentType handles DELETE /equipment-types/:id
// @Summary Delete equipment type
// @Description Delete an equipment type by ID; fails while equipment or components still reference it
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param id path int true "Equipment type ID"
// @Success 204 "Successfully deleted equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid equipment type ID"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types/{id} [delete]
func (h *EquipmentTypeHandler) DeleteEquipmentType(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.typeService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrEquipmentTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
