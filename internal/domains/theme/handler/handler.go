package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/theme/model"
	"qbrain-backend/internal/domains/theme/service"
	"qbrain-backend/internal/infrastructure/realtime"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/pkg/logger"
)

// =====================================================
// THEME HANDLER
// =====================================================

type ThemeHandler struct {
	themeService service.ServiceInterface
	hub          *realtime.Hub
}

func NewThemeHandler(themeService service.ServiceInterface, hub *realtime.Hub) *ThemeHandler {
	return &ThemeHandler{themeService: themeService, hub: hub}
}

// Get - GET /api/theme
func (h *ThemeHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.themeService.Get(c.Request.Context()))
}

// CSS - GET /api/theme.css
func (h *ThemeHandler) CSS(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.themeService.CSS(c.Request.Context())))
}

// Live - GET /api/theme/live (websocket). Gửi theme hiện tại rồi mọi lần cập nhật.
func (h *ThemeHandler) Live(c *gin.Context) {
	current := h.themeService.Get(c.Request.Context())
	h.hub.Serve(c.Writer, c.Request, &realtime.Event{Type: model.EventThemeUpdate, Data: current})
}

// Update - PUT /api/admin/theme
func (h *ThemeHandler) Update(c *gin.Context) {
	var req model.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	theme, err := h.themeService.Update(c.Request.Context(), req)
	if err != nil {
		logger.Error("theme update failed", err)
		response.InternalServerError(c, "Failed to update theme")
		return
	}
	response.Success(c, http.StatusOK, theme)
}

// Reset - POST /api/admin/theme/reset
func (h *ThemeHandler) Reset(c *gin.Context) {
	theme, err := h.themeService.Reset(c.Request.Context())
	if err != nil {
		logger.Error("theme reset failed", err)
		response.InternalServerError(c, "Failed to reset theme")
		return
	}
	response.Success(c, http.StatusOK, theme)
}
