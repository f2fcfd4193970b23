package service

import (
	"context"

	"qbrain-backend/internal/domains/blog/model"
	"qbrain-backend/internal/shared/utils"
)

// =====================================================
// BLOG SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ========================================
	// ADMIN OPERATIONS
	// ========================================

	// Create tính slug (unique), readTime, SEO mặc định và publishedAt
	Create(ctx context.Context, req model.BlogPostRequest, image *utils.FileUpload) (*model.BlogPost, error)

	// Update tính lại các field dẫn xuất; slug chỉ đổi khi title đổi
	Update(ctx context.Context, id string, req model.BlogPostRequest, image *utils.FileUpload) (*model.BlogPost, error)

	Get(ctx context.Context, id string) (*model.BlogPost, error)
	ListAll(ctx context.Context, status string) ([]*model.BlogPost, error)

	// Delete xóa featured image rồi xóa document
	Delete(ctx context.Context, id string) error

	// ========================================
	// PUBLIC OPERATIONS
	// ========================================

	ListPublished(ctx context.Context, filter model.ListPostsFilter) ([]*model.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)

	// RSSFeed trả về RSS 2.0 của các bài đã publish
	RSSFeed(ctx context.Context) ([]byte, error)

	// Sitemap gồm các trang tĩnh và mọi bài đã publish
	Sitemap(ctx context.Context) ([]byte, error)
}
