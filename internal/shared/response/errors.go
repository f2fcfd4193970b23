package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
)

// Common ghi response cho các lỗi dùng chung giữa các domain (validation,
// payload, file upload). Trả về false nếu err là lỗi riêng của domain.
func Common(c *gin.Context, err error) bool {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		ValidationError(c, verrs)
	case errors.Is(err, utils.ErrInvalidPayload):
		BadRequest(c, err.Error())
	case errors.Is(err, storage.ErrFileTooLarge):
		PayloadTooLarge(c, "File size exceeds the 10MB limit")
	case errors.Is(err, storage.ErrFileTypeNotAllow),
		errors.Is(err, storage.ErrEmptyFile),
		errors.Is(err, storage.ErrInvalidImage):
		ErrorResponse(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
	default:
		return false
	}
	return true
}
