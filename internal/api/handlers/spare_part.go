package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SparePartHandler handles HTTP requests for spare part operations
type SparePartHandler struct {
	sparePartService service.SparePartServiceInterface
}

// NewSparePartHandler creates a new spare part handler
func NewSparePartHandler(sparePartService service.SparePartServiceInterface) *SparePartHandler {
	return &SparePartHandler{
		sparePartService: sparePartService,
	}
}

// ListSpareParts handles GET /spare-parts
// @Summary List spare parts
// @Description Get all spare parts, optionally filtered by custom flag and keyword search
// @Tags spare-parts
// @Accept json
// @Produce json
// @Param isCustom query bool false "Filter by custom flag"
// @Param search query string false "Substring filter over code, description and manufacturer"
// @Success 200 {array} service.SparePartResponse "Successfully retrieved spare parts"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /spare-parts [get]
func (h *SparePartHandler) ListSpareParts(c *gin.Context) {
	isCustom, err := parseBoolQuery(c, "isCustom")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spareParts, err := h.sparePartService.List(isCustom, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, spareParts)
}

// CreateSparePart handles POST /spare-parts
// @Summary Create a new spare part
// @Description Create a new spare part with a unique material code
// @Tags spare-parts
// @Accept json
// @Produce json
// @Param sparePart body service.CreateSparePartRequest true "Spare part data"
// @Success 201 {object} service.SparePartResponse "Successfully created spare part"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Material code already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /spare-parts [post]
func (h *SparePartHandler) CreateSparePart(c *gin.Context) {
	var req service.CreateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sparePart, err := h.sparePartService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSparePartExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sparePart)
}

// GetSparePart handles GET /spare-parts/:id
// @Summary Get spare part by ID
// @Description Get a specific spare part with its suppliers
// @Tags spare-parts
// @Accept json
// @Produce json
// @Param id path int true "Spare part ID"
// @Success 200 {object} service.SparePartResponse "Successfully retrieved spare part"
// @Failure 400 {object} map[string]interface{} "Invalid spare part ID"
// @Failure 404 {object} map[string]interface{} "Spare part not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /spare-parts/{id} [get]
func (h *SparePartHandler) GetSparePart(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sparePart, err := h.sparePartService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSparePartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sparePart)
}

// UpdateSparePart handles PUT /spare-parts/:id
// @Summary Update spare part
// @Description Update an existing spare part by ID
// @Tags spare-parts
// @Accept json
// @Produce json
// @Param id path int true "Spare part ID"
// @Param sparePart body service.UpdateSparePartRequest true "Updated spare part data"
// @Success 200 {object} service.SparePartResponse "Successfully updated spare part"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Spare part not found"
// @Failure 409 {object} map[string]interface{} "Material code already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /spare-parts/{id} [put]
func (h *SparePartHandler) UpdateSparePart(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sparePart, err := h.sparePartService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSparePartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSparePartExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sparePart)
}

// DeleteSparePart handles DELETE /spare-parts/:id
// @Summary Delete spare part
// @Description Delete a spare part by ID; fails while associations still reference it
// @Tags spare-parts
// @Accept json
// @Produce json
// @Param id path int true "Spare part ID"
// @Success 204 "Successfully deleted spare part"
// @Failure 400 {object} map[string]interface{} "Invalid spare part ID"
// @Failure 404 {object} map[string]interface{} "Spare part not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /spare-parts/{id} [delete]
func (h *SparePartHandler) DeleteSparePart(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sparePartService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrSparePartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
