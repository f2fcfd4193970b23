package repository

import (
	"context"
	"time"

	"qbrain-backend/internal/domains/application/model"
)

// =====================================================
// APPLICATION REPOSITORY INTERFACE
// =====================================================

type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)

	// List theo createdAt giảm dần, status rỗng = tất cả
	List(ctx context.Context, status string) ([]*model.Application, error)

	// ListSince trả về hồ sơ tạo sau since (dùng cho daily digest)
	ListSince(ctx context.Context, since time.Time) ([]*model.Application, error)

	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
