package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/site/service"
	"qbrain-backend/internal/shared/response"
)

type SiteHandler struct {
	siteService service.ServiceInterface
}

func NewSiteHandler(siteService service.ServiceInterface) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// Get - GET /api/site
func (h *SiteHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.siteService.Content(c.Request.Context()))
}
