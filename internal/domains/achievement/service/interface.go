package service

import (
	"context"

	"qbrain-backend/internal/domains/achievement/model"
	"qbrain-backend/internal/shared/utils"
)

// =====================================================
// ACHIEVEMENT SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateHackathonRequest, image *utils.FileUpload) (*model.Hackathon, error)
	Get(ctx context.Context, id string) (*model.Hackathon, error)
	List(ctx context.Context) ([]*model.Hackathon, error)
	Update(ctx context.Context, id string, req model.UpdateHackathonRequest, image *utils.FileUpload) (*model.Hackathon, error)
	Delete(ctx context.Context, id string) error
}
