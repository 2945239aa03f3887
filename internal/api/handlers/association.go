package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssociationHandler handles HTTP requests for association operations
type AssociationHandler struct {
	associationService service.AssociationServiceInterface
}

// NewAssociationHandler creates a new association handler
func NewAssociationHandler(associationService service.AssociationServiceInterface) *AssociationHandler {
	return &AssociationHandler{
		associationService: associationService,
	}
}

// parseSupplyCycleRange parses a "min,max" supplyCycleRange parameter into
// its two inclusive bounds, both nil when the parameter is absent
func parseSupplyCycleRange(raw string) (*int, *int, error) {
	if raw == "" {
		return nil, nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("invalid supplyCycleRange %q, expected min,max", raw)
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid supplyCycleRange minimum %q", parts[0])
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid supplyCycleRange maximum %q", parts[1])
	}
	return &min, &max, nil
}

// ListAssociations handles GET /associations
// @Summary List associations
// @Description Search equipment-component-spare-part associations with advanced filters
// @Tags associations
// @Accept json
// @Produce json
// @Param equipmentId query int false "Filter by equipment ID"
// @Param componentId query int false "Filter by component ID"
// @Param sparePartId query int false "Filter by spare part ID"
// @Param importanceLevel query string false "Comma-separated component importance levels (A,B,C)"
// @Param supplyCycleRange query string false "Inclusive supplier supply-cycle bounds in weeks, as min,max"
// @Param isCustom query bool false "Filter by spare part custom flag"
// @Param keyword query string false "Substring filter over part code, description, specification, equipment and component names"
// @Success 200 {array} service.AssociationResponse "Successfully retrieved associations"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /associations [get]
func (h *AssociationHandler) ListAssociations(c *gin.Context) {
	equipmentID, err := parseUintQuery(c, "equipmentId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	componentID, err := parseUintQuery(c, "componentId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sparePartID, err := parseUintQuery(c, "sparePartId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	isCustom, err := parseBoolQuery(c, "isCustom")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cycleMin, cycleMax, err := parseSupplyCycleRange(c.Query("supplyCycleRange"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	associations, err := h.associationService.List(service.ListAssociationQuery{
		EquipmentID:      equipmentID,
		ComponentID:      componentID,
		SparePartID:      sparePartID,
		ImportanceLevels: parseImportanceLevels(c.Query("importanceLevel")),
		SupplyCycleMin:   cycleMin,
		SupplyCycleMax:   cycleMax,
		IsCustom:         isCustom,
		Keyword:          c.Query("keyword"),
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, associations)
}

// CreateAssociation handles POST /associations
// @Summary Create a new association
// @Description Associate an existing equipment, component and spare part
// @Tags associations
// @Accept json
// @Produce json
// @Param association body service.CreateAssociationRequest true "Association data"
// @Success 201 {object} service.AssociationResponse "Successfully created association"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Equipment, component or spare part not found"
// @Failure 409 {object} map[string]interface{} "Association already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /associations [post]
func (h *AssociationHandler) CreateAssociation(c *gin.Context) {
	var req service.CreateAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	association, err := h.associationService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEquipmentNotFound) ||
			errors.Is(err, apperrors.ErrComponentNotFound) ||
			errors.Is(err, apperrors.ErrSparePartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAssociationExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, association)
}

// GetAssociation handles GET /associations/:id
// @Summary Get association by ID
// @Description Get a specific association with its three sides resolved
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Success 200 {object} service.AssociationResponse "Successfully retrieved association"
// @Failure 400 {object} map[string]interface{} "Invalid association ID"
// @Failure 404 {object} map[string]interface{} "Association not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /associations/{id} [get]
func (h *AssociationHandler) GetAssociation(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	association, err := h.associationService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssociationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, association)
}

// UpdateAssociation handles PUT /associations/:id
// @Summary Update association
// @Description Update the quantity of an existing association
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Param association body service.UpdateAssociationRequest true "Updated association data"
// @Success 200 {object} service.AssociationResponse "Successfully updated association"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Association not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /associations/{id} [put]
func (h *AssociationHandler) UpdateAssociation(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	association, err := h.associationService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAssociationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, association)
}

// DeleteAssociation handles DELETE /associations/:id
// @Summary Delete association
// @Description Delete an association by ID
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Association ID"
// @Success 204 "Successfully deleted association"
// @Failure 400 {object} map[string]interface{} "Invalid association ID"
// @Failure 404 {object} map[string]interface{} "Association not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /associations/{id} [delete]
func (h *AssociationHandler) DeleteAssociation(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.associationService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAssociationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
