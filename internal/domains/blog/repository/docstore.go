package repository

import (
	"context"
	"errors"

	"qbrain-backend/internal/domains/blog/model"
	"qbrain-backend/internal/infrastructure/docstore"
)

type docstoreRepository struct {
	posts *docstore.Collection[model.BlogPost, *model.BlogPost]
}

func NewBlogRepository(store docstore.Store) BlogRepository {
	return &docstoreRepository{
		posts: docstore.NewCollection[model.BlogPost](store, docstore.BlogPosts),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.posts.Create(ctx, post.ID, post)
}

func (r *docstoreRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	post, err := r.posts.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, model.ErrPostNotFound
	}
	return post, err
}

func (r *docstoreRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	q := docstore.Query{Limit: 1}.
		Where("slug", slug).
		Where("status", model.StatusPublished)
	posts, err := r.posts.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, model.ErrPostNotFound
	}
	return posts[0], nil
}

func (r *docstoreRepository) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	posts, err := r.posts.Find(ctx, docstore.Query{Limit: 2}.Where("slug", slug))
	if err != nil {
		return false, err
	}
	for _, p := range posts {
		if p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *docstoreRepository) ListAll(ctx context.Context, status string) ([]*model.BlogPost, error) {
	q := docstore.Query{Descending: true}
	if status != "" {
		q = q.Where("status", status)
	}
	return r.posts.Find(ctx, q)
}

func (r *docstoreRepository) ListPublished(ctx context.Context, category string) ([]*model.BlogPost, error) {
	q := docstore.Query{OrderBy: "publishedAt", Descending: true}.Where("status", model.StatusPublished)
	if category != "" {
		q = q.Where("category", category)
	}
	return r.posts.Find(ctx, q)
}

func (r *docstoreRepository) Save(ctx context.Context, post *model.BlogPost) error {
	err := r.posts.Replace(ctx, post.ID, post)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrPostNotFound
	}
	return err
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	err := r.posts.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrPostNotFound
	}
	return err
}

func (r *docstoreRepository) Count(ctx context.Context, status string) (int64, error) {
	q := docstore.Query{}
	if status != "" {
		q = q.Where("status", status)
	}
	return r.posts.Count(ctx, q)
}
