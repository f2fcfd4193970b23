package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/application/model"
	"qbrain-backend/internal/domains/application/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/internal/shared/utils"
	"qbrain-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// =====================================================
// APPLICATION HANDLER
// =====================================================

type ApplicationHandler struct {
	applicationService service.ServiceInterface
}

func NewApplicationHandler(applicationService service.ServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Submit nhận hồ sơ cuối cùng của wizard
// POST /api/application (multipart: applicationData JSON + optional resume)
func (h *ApplicationHandler) Submit(c *gin.Context) {
	// Step 1: Parse applicationData
	var req model.SubmitApplicationRequest
	if err := utils.BindPayload(c, model.FormDataField, &req); err != nil {
		handleError(c, err)
		return
	}
	req.Normalize()

	// Step 2: Validate
	if err := req.Validate(); err != nil {
		handleError(c, err)
		return
	}

	// Step 3: Optional resume
	resume, err := utils.ReadFormFile(c, model.FormResumeField)
	if err != nil {
		handleError(c, err)
		return
	}

	// Step 4: Save + email
	result, err := h.applicationService.Submit(c.Request.Context(), req, resume)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// List - GET /api/admin/applications?status=
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, apps, len(apps))
}

// Get - GET /api/admin/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applicationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// UpdateStatus - PATCH /api/admin/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// Delete - DELETE /api/admin/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// Export - GET /api/admin/applications/export?status=
func (h *ApplicationHandler) Export(c *gin.Context) {
	data, err := h.applicationService.Export(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("applications-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func handleError(c *gin.Context, err error) {
	if response.Common(c, err) {
		return
	}
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("application request failed", err)
		response.InternalServerError(c, "Failed to process application")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
