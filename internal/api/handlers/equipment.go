package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler handles HTTP requests for equipment operations
type EquipmentHandler struct {
	equipmentService service.EquipmentServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(equipmentService service.EquipmentServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
	}
}

// ListEquipment handles GET /equipment
// @Summary List equipment
// @Description Get a paginated, sorted equipment listing with workshop, type and base filters
// @Tags equipment
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param sortBy query string false "Sort field: id, name, workshopName, typeName, baseName, createdAt" default(createdAt)
// @Param sortOrder query string false "Sort direction: asc or desc" default(desc)
// @Param workshopId query int false "Filter by workshop ID"
// @Param typeId query int false "Filter by equipment type ID"
// @Param baseId query int false "Filter by base ID"
// @Param search query string false "Name substring filter"
// @Success 200 {object} service.EquipmentListResponse "Successfully retrieved equipment"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	workshopID, err := parseUintQuery(c, "workshopId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	typeID, err := parseUintQuery(c, "typeId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	baseID, err := parseUintQuery(c, "baseId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.equipmentService.List(service.ListEquipmentQuery{
		Page:       page,
		Limit:      limit,
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		WorkshopID: workshopID,
		TypeID:     typeID,
		BaseID:     baseID,
		Search:     c.Query("search"),
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateEquipment handles POST /equipment
// @Summary Create new equipment
// @Description Create new equipment within an existing workshop and type
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Successfully created equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Workshop or equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.equipmentService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrWorkshopNotFound) || errors.Is(err, apperrors.ErrEquipmentTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// GetEquipment handles GET /equipment/:id
// @Summary Get equipment by ID
// @Description Get specific equipment with its workshop, base and type names
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.equipmentService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// UpdateEquipment handles PUT /equipment/:id
// @Summary Update equipment
// @Description Update existing equipment by ID
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Param equipment body service.UpdateEquipmentRequest true "Updated equipment data"
// @Success 200 {object} service.EquipmentResponse "Successfully updated equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Equipment, workshop or type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.equipmentService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEquipmentNotFound) ||
			errors.Is(err, apperrors.ErrWorkshopNotFound) ||
			errors.Is(err, apperrors.ErrEquipmentTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment handles DELETE /equipment/:id
// @Summary Delete equipment
// @Description Delete equipment by ID; fails while associations still reference it
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 204 "Successfully deleted equipment"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.equipmentService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
