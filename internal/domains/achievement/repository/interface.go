package repository

import (
	"context"

	"qbrain-backend/internal/domains/achievement/model"
)

// =====================================================
// ACHIEVEMENT REPOSITORY INTERFACE
// =====================================================

type HackathonRepository interface {
	Create(ctx context.Context, h *model.Hackathon) error
	GetByID(ctx context.Context, id string) (*model.Hackathon, error)

	// List sắp xếp theo date giảm dần (mới nhất trước)
	List(ctx context.Context) ([]*model.Hackathon, error)

	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
