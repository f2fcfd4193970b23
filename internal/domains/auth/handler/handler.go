package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/auth/model"
	"qbrain-backend/internal/domains/auth/service"
	"qbrain-backend/internal/shared/middleware"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/pkg/logger"
)

type AuthHandler struct {
	authService service.ServiceInterface
}

func NewAuthHandler(authService service.ServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login - POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	// Step 1: Parse
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req.Normalize()

	// Step 2: Validate
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	// Step 3: Authenticate
	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			logger.Info("admin login failed", map[string]interface{}{
				"email": req.Email,
				"ip":    middleware.ClientIP(c),
			})
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Me - GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"email": c.GetString(middleware.ContextKeyEmail),
		"role":  c.GetString(middleware.ContextKeyRole),
	})
}

func handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("admin login error", err)
		response.InternalServerError(c, "Failed to login")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
