package service

import (
	"context"

	"qbrain-backend/internal/domains/team/model"
	"qbrain-backend/internal/shared/utils"
)

// =====================================================
// TEAM SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Create lưu member, upload ảnh nếu có
	Create(ctx context.Context, req model.CreateTeamMemberRequest, image *utils.FileUpload) (*model.TeamMember, error)

	Get(ctx context.Context, id string) (*model.TeamMember, error)

	// List dùng chung cho public và admin (cached)
	List(ctx context.Context) ([]*model.TeamMember, error)

	// Update merge field; ảnh mới thay imageUrl và xóa blob cũ
	Update(ctx context.Context, id string, req model.UpdateTeamMemberRequest, image *utils.FileUpload) (*model.TeamMember, error)

	// Delete xóa blob ảnh trước rồi mới xóa document
	Delete(ctx context.Context, id string) error
}
