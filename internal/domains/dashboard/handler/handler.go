package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/dashboard/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/pkg/logger"
)

type DashboardHandler struct {
	dashboardService service.ServiceInterface
}

func NewDashboardHandler(dashboardService service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats - GET /api/admin/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		logger.Error("load dashboard stats failed", err)
		response.InternalServerError(c, "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
