package repository

import (
	"context"
	"errors"
	"time"

	"qbrain-backend/internal/domains/contact/model"
	"qbrain-backend/internal/infrastructure/docstore"
)

type docstoreRepository struct {
	messages *docstore.Collection[model.ContactMessage, *model.ContactMessage]
}

func NewContactRepository(store docstore.Store) ContactRepository {
	return &docstoreRepository{
		messages: docstore.NewCollection[model.ContactMessage](store, docstore.ContactMessages),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.messages.Create(ctx, msg.ID, msg)
}

func (r *docstoreRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	msg, err := r.messages.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, model.ErrMessageNotFound
	}
	return msg, err
}

func (r *docstoreRepository) List(ctx context.Context, status string) ([]*model.ContactMessage, error) {
	q := docstore.Query{Descending: true}
	if status != "" {
		q = q.Where("status", status)
	}
	return r.messages.Find(ctx, q)
}

// ListSince - tin nhắn mới hơn since, mới nhất trước
func (r *docstoreRepository) ListSince(ctx context.Context, since time.Time) ([]*model.ContactMessage, error) {
	all, err := r.messages.Find(ctx, docstore.Query{Descending: true})
	if err != nil {
		return nil, err
	}
	recent := make([]*model.ContactMessage, 0)
	for _, msg := range all {
		if !msg.CreatedAt.After(since) {
			break
		}
		recent = append(recent, msg)
	}
	return recent, nil
}

func (r *docstoreRepository) UpdateStatus(ctx context.Context, id, status string) error {
	err := r.messages.Merge(ctx, id, map[string]interface{}{"status": status})
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrMessageNotFound
	}
	return err
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	err := r.messages.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrMessageNotFound
	}
	return err
}

func (r *docstoreRepository) Count(ctx context.Context, status string) (int64, error) {
	q := docstore.Query{}
	if status != "" {
		q = q.Where("status", status)
	}
	return r.messages.Count(ctx, q)
}
