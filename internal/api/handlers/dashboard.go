package handlers

import (
	"net/http"

	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for dashboard statistics
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles GET /dashboard/stats
// @Summary Get dashboard statistics
// @Description Get registry-wide entity counts and distribution breakdowns
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardStatsResponse "Successfully retrieved statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
