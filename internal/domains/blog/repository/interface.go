package repository

import (
	"context"

	"qbrain-backend/internal/domains/blog/model"
)

// =====================================================
// BLOG REPOSITORY INTERFACE
// =====================================================

type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)

	// GetPublishedBySlug chỉ trả về bài đã publish
	GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)

	// SlugTaken kiểm tra slug đã được bài khác (khác excludeID) sử dụng
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)

	// ListAll theo createdAt giảm dần, status rỗng = tất cả
	ListAll(ctx context.Context, status string) ([]*model.BlogPost, error)

	// ListPublished theo publishedAt giảm dần, category rỗng = tất cả
	ListPublished(ctx context.Context, category string) ([]*model.BlogPost, error)

	// Save ghi đè document đã tồn tại; ErrPostNotFound nếu document đã bị xóa
	Save(ctx context.Context, post *model.BlogPost) error

	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
