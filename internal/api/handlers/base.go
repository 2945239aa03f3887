package handlers

import (
	"errors"
	"net/http"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BaseHandler handles HTTP requests for base operations
type BaseHandler struct {
	baseService service.BaseServiceInterface
}

// NewBaseHandler creates a new base handler
func NewBaseHandler(baseService service.BaseServiceInterface) *BaseHandler {
	return &BaseHandler{
		baseService: baseService,
	}
}

// ListBases handles GET /bases
// @Summary List all bases
// @Description Get all bases, optionally filtered by a name search
// @Tags bases
// @Accept json
// @Produce json
// @Param search query string false "Name substring filter"
// @Success 200 {array} service.BaseResponse "Successfully retrieved bases"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /bases [get]
func (h *BaseHandler) ListBases(c *gin.Context) {
	bases, err := h.baseService.List(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bases)
}

// CreateBase handles POST /bases
// @Summary Create a new base
// @Description Create a new manufacturing base
// @Tags bases
// @Accept json
// @Produce json
// @Param base body service.CreateBaseRequest true "Base data"
// @Success 201 {object} service.BaseResponse "Successfully created base"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Base already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /bases [post]
func (h *BaseHandler) CreateBase(c *gin.Context) {
	var req service.CreateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	base, err := h.baseService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrBaseExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, base)
}

// GetBase handles GET /bases/:id
// @Summary Get base by ID
// @Description Get a specific base by its ID
// @Tags bases
// @Accept json
// @Produce json
// @Param id path int true "Base ID"
// @Success 200 {object} service.BaseResponse "Successfully retrieved base"
// @Failure 400 {object} map[string]interface{} "Invalid base ID"
// @Failure 404 {object} map[string]interface{} "Base not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /bases/{id} [get]
func (h *BaseHandler) GetBase(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	base, err := h.baseService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, base)
}

// UpdateBase handles PUT /bases/:id
// @Summary Update base
// @Description Update an existing base by ID
// @Tags bases
// @Accept json
// @Produce json
// @Param id path int true "Base ID"
// @Param base body service.UpdateBaseRequest true "Updated base data"
// @Success 200 {object} service.BaseResponse "Successfully updated base"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Base not found"
// @Failure 409 {object} map[string]interface{} "Base name already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /bases/{id} [put]
func (h *BaseHandler) UpdateBase(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	base, err := h.baseService.Update(id, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrBaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrBaseExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, base)
}

// DeleteBase handles DELETE /bases/:id
// @Summary Delete base
// @Description Delete a base by ID; fails while workshops still reference it
// @Tags bases
// @Accept json
// @Produce json
// @Param id path int true "Base ID"
// @Success 204 "Successfully deleted base"
// @Failure 400 {object} map[string]interface{} "Invalid base ID"
// @Failure 404 {object} map[string]interface{} "Base not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /bases/{id} [delete]
func (h *BaseHandler) DeleteBase(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.baseService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrBaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
