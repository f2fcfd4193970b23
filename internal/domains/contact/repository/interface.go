package repository

import (
	"context"
	"time"

	"qbrain-backend/internal/domains/contact/model"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context, status string) ([]*model.ContactMessage, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
