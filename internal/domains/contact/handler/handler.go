package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/contact/model"
	"qbrain-backend/internal/domains/contact/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/pkg/logger"
)

type ContactHandler struct {
	contactService service.ServiceInterface
}

func NewContactHandler(contactService service.ServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit - POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// List - GET /api/admin/messages?status=
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.contactService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, msgs, len(msgs))
}

// UpdateStatus - PATCH /api/admin/messages/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	msg, err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// Delete - DELETE /api/admin/messages/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("contact request failed", err)
		response.InternalServerError(c, "Failed to process contact message")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
