package repository

import (
	"context"
	"errors"
	"time"

	"qbrain-backend/internal/domains/application/model"
	"qbrain-backend/internal/infrastructure/docstore"
)

type docstoreRepository struct {
	apps *docstore.Collection[model.Application, *model.Application]
}

func NewApplicationRepository(store docstore.Store) ApplicationRepository {
	return &docstoreRepository{
		apps: docstore.NewCollection[model.Application](store, docstore.Applications),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, app *model.Application) error {
	return r.apps.Create(ctx, app.ID, app)
}

func (r *docstoreRepository) GetByID(ctx context.Context, id string) (*model.Application, error) {
	app, err := r.apps.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, model.ErrApplicationNotFound
	}
	return app, err
}

func (r *docstoreRepository) List(ctx context.Context, status string) ([]*model.Application, error) {
	q := docstore.Query{Descending: true}
	if status != "" {
		q = q.Where("status", status)
	}
	return r.apps.Find(ctx, q)
}

// ListSince lọc trong bộ nhớ vì Query chỉ hỗ trợ so sánh bằng
func (r *docstoreRepository) ListSince(ctx context.Context, since time.Time) ([]*model.Application, error) {
	all, err := r.apps.Find(ctx, docstore.Query{Descending: true})
	if err != nil {
		return nil, err
	}
	recent := make([]*model.Application, 0)
	for _, app := range all {
		if !app.CreatedAt.After(since) {
			break
		}
		recent = append(recent, app)
	}
	return recent, nil
}

func (r *docstoreRepository) UpdateStatus(ctx context.Context, id, status string) error {
	err := r.apps.Merge(ctx, id, map[string]interface{}{"status": status})
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrApplicationNotFound
	}
	return err
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	err := r.apps.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrApplicationNotFound
	}
	return err
}

func (r *docstoreRepository) Count(ctx context.Context, status string) (int64, error) {
	q := docstore.Query{}
	if status != "" {
		q = q.Where("status", status)
	}
	return r.apps.Count(ctx, q)
}
