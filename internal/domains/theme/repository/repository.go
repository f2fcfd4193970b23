package repository

import (
	"context"
	"errors"

	"qbrain-backend/internal/domains/theme/model"
	"qbrain-backend/internal/infrastructure/docstore"
)

type ThemeRepository interface {
	// Get trả về ErrThemeNotFound nếu settings/theme chưa tồn tại
	Get(ctx context.Context) (*model.ThemeConfig, error)
	Save(ctx context.Context, theme *model.ThemeConfig) error
}

type docstoreRepository struct {
	settings *docstore.Collection[model.ThemeConfig, *model.ThemeConfig]
}

func NewThemeRepository(store docstore.Store) ThemeRepository {
	return &docstoreRepository{
		settings: docstore.NewCollection[model.ThemeConfig](store, docstore.Settings),
	}
}

func (r *docstoreRepository) Get(ctx context.Context) (*model.ThemeConfig, error) {
	theme, err := r.settings.Get(ctx, model.DocumentID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, model.ErrThemeNotFound
	}
	return theme, err
}

func (r *docstoreRepository) Save(ctx context.Context, theme *model.ThemeConfig) error {
	return r.settings.Set(ctx, model.DocumentID, theme)
}
