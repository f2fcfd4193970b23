package service

import (
	"context"
	"time"

	"qbrain-backend/internal/domains/contact/model"
)

type ServiceInterface interface {
	// Submit lưu tin nhắn (status unread) rồi gửi đúng 2 email:
	// thông báo cho admin (reply-to = người gửi) và auto-reply cho người gửi.
	Submit(ctx context.Context, req model.ContactRequest) (*model.SubmitResult, error)

	List(ctx context.Context, status string) ([]*model.ContactMessage, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
