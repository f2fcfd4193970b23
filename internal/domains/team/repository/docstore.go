package repository

import (
	"context"
	"errors"

	"qbrain-backend/internal/domains/team/model"
	"qbrain-backend/internal/infrastructure/docstore"
)

type docstoreRepository struct {
	members *docstore.Collection[model.TeamMember, *model.TeamMember]
}

func NewTeamRepository(store docstore.Store) TeamRepository {
	return &docstoreRepository{
		members: docstore.NewCollection[model.TeamMember](store, docstore.TeamMembers),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.members.Create(ctx, member.ID, member)
}

func (r *docstoreRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	member, err := r.members.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, model.ErrMemberNotFound
	}
	return member, err
}

func (r *docstoreRepository) List(ctx context.Context) ([]*model.TeamMember, error) {
	return r.members.Find(ctx, docstore.Query{Descending: true})
}

func (r *docstoreRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	err := r.members.Merge(ctx, id, fields)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrMemberNotFound
	}
	return err
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	err := r.members.Delete(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.ErrMemberNotFound
	}
	return err
}

func (r *docstoreRepository) Count(ctx context.Context) (int64, error) {
	return r.members.Count(ctx, docstore.Query{})
}
