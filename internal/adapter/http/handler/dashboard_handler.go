package handler

import (
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard statistics.
type DashboardHandler struct {
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingSvc: reportingSvc}
}

// GetStats handles GET /api/v1/dashboard/stats?period=day|week|month|all.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	mid, ok := merchantID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "all")
	stats, err := h.reportingSvc.GetDashboardStats(c.Request.Context(), mid, period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}
