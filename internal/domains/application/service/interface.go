package service

import (
	"context"
	"time"

	"qbrain-backend/internal/domains/application/model"
	"qbrain-backend/internal/shared/utils"
)

// =====================================================
// APPLICATION SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Submit lưu resume + hồ sơ rồi gửi 2 email (admin kèm resume, xác nhận cho ứng viên).
	// Lỗi gửi mail không rollback hồ sơ: trả về EmailSent=false.
	Submit(ctx context.Context, req model.SubmitApplicationRequest, resume *utils.FileUpload) (*model.SubmitResult, error)

	Get(ctx context.Context, id string) (*model.Application, error)
	List(ctx context.Context, status string) ([]*model.Application, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.Application, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Application, error)

	// Delete xóa resume blob trước rồi xóa document
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context, status string) (int64, error)

	// Export xuất danh sách ra file XLSX
	Export(ctx context.Context, status string) ([]byte, error)
}
