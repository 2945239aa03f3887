package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SupplierHandler handles HTTP requests for spare part supplier operations
type SupplierHandler struct {
	supplierService service.SupplierServiceInterface
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService service.SupplierServiceInterface) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// ListSuppliers handles GET /suppliers
// @Summary List suppliers
// @Description Get all spare part suppliers, optionally filtered by spare part
// @Tags suppliers
// @Accept json
// @Produce json
// @Param sparePartId query int false "Filter by spare part ID"
// @Success 200 {array} service.SupplierResponse "Successfully retrieved suppliers"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	sparePartID, err := parseUintQuery(c, "sparePartId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suppliers, err := h.supplierService.List(sparePartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

// CreateSupplier handles POST /suppliers
// @Summary Create a new supplier
// @Description Create a new supplier record for an existing spare part
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body service.CreateSupplierRequest true "Supplier data"
// @Success 201 {object} service.SupplierResponse "Successfully created supplier"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Spare part not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req service.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.supplierService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSparePartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

// GetSupplier handles GET /suppliers/:id
// @Summary Get supplier by ID
// @Description Get a specific supplier by its ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} service.SupplierResponse "Successfully retrieved supplier"
// @Failure 400 {object} map[string]interface{} "Invalid supplier ID"
// @Failure 404 {object} map[string]interface{} "Supplier not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.supplierService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// UpdateSupplier handles PUT /suppliers/:id
// @Summary Update supplier
// @Description Update an existing supplier by ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param supplier body service.UpdateSupplierRequest true "Updated supplier data"
// @Success 200 {object} service.SupplierResponse "Successfully updated supplier"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Supplier not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.supplierService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE /suppliers/:id
// @Summary Delete supplier
// @Description Delete a supplier by ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 204 "Successfully deleted supplier"
// @Failure 400 {object} map[string]interface{} "Invalid supplier ID"
// @Failure 404 {object} map[string]interface{} "Supplier not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.supplierService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
