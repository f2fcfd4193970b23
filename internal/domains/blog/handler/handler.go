package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/domains/blog/model"
	"qbrain-backend/internal/domains/blog/service"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/internal/shared/utils"
	"qbrain-backend/pkg/logger"
)

// =====================================================
// BLOG HANDLER
// =====================================================

type BlogHandler struct {
	blogService service.ServiceInterface
}

func NewBlogHandler(blogService service.ServiceInterface) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPublished - GET /api/blog?category=&tag=
func (h *BlogHandler) ListPublished(c *gin.Context) {
	var filter model.ListPostsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	posts, err := h.blogService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, posts, len(posts))
}

// GetBySlug - GET /api/blog/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// RSS - GET /api/blog/rss.xml
func (h *BlogHandler) RSS(c *gin.Context) {
	feed, err := h.blogService.RSSFeed(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", feed)
}

// Sitemap - GET /sitemap.xml
func (h *BlogHandler) Sitemap(c *gin.Context) {
	sitemap, err := h.blogService.Sitemap(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", sitemap)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListAll - GET /api/admin/blog?status=
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.blogService.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, posts, len(posts))
}

// Get - GET /api/admin/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Create - POST /api/admin/blog (JSON, or multipart "data" + optional "featuredImage")
func (h *BlogHandler) Create(c *gin.Context) {
	// Step 1: Bind + validate
	var req model.BlogPostRequest
	if err := utils.BindPayload(c, model.FormDataField, &req); err != nil {
		handleError(c, err)
		return
	}
	if err := req.ValidateCreate(); err != nil {
		handleError(c, err)
		return
	}

	// Step 2: Optional featured image
	image, err := utils.ReadFormFile(c, model.FormImageField)
	if err != nil {
		handleError(c, err)
		return
	}

	// Step 3: Call service
	post, err := h.blogService.Create(c.Request.Context(), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

// Update - PUT /api/admin/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	var req model.BlogPostRequest
	if err := utils.BindPayload(c, model.FormDataField, &req); err != nil {
		handleError(c, err)
		return
	}
	if err := req.ValidateUpdate(); err != nil {
		handleError(c, err)
		return
	}

	image, err := utils.ReadFormFile(c, model.FormImageField)
	if err != nil {
		handleError(c, err)
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Delete - DELETE /api/admin/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
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
		logger.Error("blog request failed", err)
		response.InternalServerError(c, "Failed to process blog post")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
