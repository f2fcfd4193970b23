package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/media/model"
	"qbrain-backend/internal/domains/media/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/internal/shared/utils"
	"qbrain-backend/pkg/logger"
)

type MediaHandler struct {
	mediaService service.ServiceInterface
}

func NewMediaHandler(mediaService service.ServiceInterface) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload - POST /api/upload (multipart field "file")
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := utils.ReadFormFile(c, model.FormFileField)
	if err != nil {
		handleError(c, err)
		return
	}

	res, err := h.mediaService.Upload(c.Request.Context(), file)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func handleError(c *gin.Context, err error) {
	if response.Common(c, err) {
		return
	}
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("file upload failed", err)
		response.InternalServerError(c, "Failed to upload file")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), "No file uploaded")
}
