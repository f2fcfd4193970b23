package repository

import (
	"context"
	"errors"

	"qbrain-backend/internal/domains/achievement/model"
	"qbrain-backend/internal/infrastructure/docstore"
)

type docstoreRepository struct {
	hackathons *docstore.Collection[model.Hackathon, *model.Hackathon]
}

func NewHackathonRepository(store docstore.Store) HackathonRepository {
	return &docstoreRepository{
		hackathons: docstore.NewCollection[model.Hackathon](store, docstore.Hackathons),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, h *model.Hackathon) error {
	return r.hackathons.Create(ctx, h.ID, h)
}

func (r *docstoreRepository) GetByID(ctx context.Context, id string) (*model.Hackathon, error) {
	h, err := r.hackathons.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, model.ErrHackathonNotFound
	}
	return h, err
}

func (r *docstoreRepository) List(ctx context.Context) ([]*model.Hackathon, error) {
	return r.hackathons.Find(ctx, docstore.Query{OrderBy: "date", Descending: true})
}

func (r *docstoreRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	err := r.hackathons.Merge(ctx, id, fields)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrHackathonNotFound
	}
	return err
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	err := r.hackathons.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrHackathonNotFound
	}
	return err
}

func (r *docstoreRepository) Count(ctx context.Context) (int64, error) {
	return r.hackathons.Count(ctx, docstore.Query{})
}
