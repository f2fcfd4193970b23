package repository

import (
	"context"

	"qbrain-backend/internal/domains/team/model"
)

// =====================================================
// TEAM REPOSITORY INTERFACE
// =====================================================

type TeamRepository interface {
	// Create lưu member mới với ID cho trước
	Create(ctx context.Context, member *model.TeamMember) error

	// GetByID trả về ErrMemberNotFound nếu không tồn tại
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)

	// List theo createdAt giảm dần
	List(ctx context.Context) ([]*model.TeamMember, error)

	// Update merge các field được truyền vào
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}
