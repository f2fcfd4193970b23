package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/team/model"
	"qbrain-backend/internal/domains/team/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/internal/shared/utils"
	"qbrain-backend/pkg/logger"
)

// =====================================================
// TEAM HANDLER
// =====================================================

type TeamHandler struct {
	teamService service.ServiceInterface
}

func NewTeamHandler(teamService service.ServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List returns all team members
// GET /api/team, GET /api/admin/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, members, len(members))
}

// Get returns one member
// GET /api/admin/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	member, err := h.teamService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// Create adds a member (JSON, or multipart "data" + optional "image")
// POST /api/admin/team
func (h *TeamHandler) Create(c *gin.Context) {
	// Step 1: Bind payload
	var req model.CreateTeamMemberRequest
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

	// Step 3: Optional image
	image, err := utils.ReadFormFile(c, model.FormImageField)
	if err != nil {
		handleError(c, err)
		return
	}

	// Step 4: Call service
	member, err := h.teamService.Create(c.Request.Context(), req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// Update merges fields and optionally replaces the image
// PUT /api/admin/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var req model.UpdateTeamMemberRequest
	if err := utils.BindPayload(c, model.FormDataField, &req); err != nil {
		handleError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(c, err)
		return
	}

	image, err := utils.ReadFormFile(c, model.FormImageField)
	if err != nil {
		handleError(c, err)
		return
	}

	member, err := h.teamService.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// Delete removes the member and its image
// DELETE /api/admin/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func handleError(c *gin.Context, err error) {
	if response.Common(c, err) {
		return
	}
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("team request failed", err)
		response.InternalServerError(c, "Failed to process team member")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
