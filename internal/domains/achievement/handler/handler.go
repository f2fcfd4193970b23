package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/achievement/model"
	"qbrain-backend/internal/domains/achievement/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/internal/shared/utils"
	"qbrain-backend/pkg/logger"
)

// =====================================================
// ACHIEVEMENT HANDLER
// =====================================================

type AchievementHandler struct {
	achievementService service.ServiceInterface
}

func NewAchievementHandler(achievementService service.ServiceInterface) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// List returns all achievements
// GET /api/achievements, GET /api/admin/achievements
func (h *AchievementHandler) List(c *gin.Context) {
	items, err := h.achievementService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, items, len(items))
}

// Get returns one achievement
// GET /api/admin/achievements/:id
func (h *AchievementHandler) Get(c *gin.Context) {
	item, err := h.achievementService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create adds an achievement (JSON, or multipart "data" + optional "image")
// POST /api/admin/achievements
func (h *AchievementHandler) Create(c *gin.Context) {
	// Step 1: Bind payload
	var req model.CreateHackathonRequest
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
	item, err := h.achievementService.Create(c.Request.Context(), req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// Update merges fields and optionally replaces its image
// PUT /api/admin/achievements/:id
func (h *AchievementHandler) Update(c *gin.Context) {
	var req model.UpdateHackathonRequest
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

	item, err := h.achievementService.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Delete removes the achievement and its image
// DELETE /api/admin/achievements/:id
func (h *AchievementHandler) Delete(c *gin.Context) {
	if err := h.achievementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
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
		logger.Error("achievement request failed", err)
		response.InternalServerError(c, "Failed to process achievement")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
