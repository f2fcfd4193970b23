package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/team/model"
	"qbrain-backend/internal/domains/team/repository"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
	pkgcache "qbrain-backend/pkg/cache"
)

type teamService struct {
	repo     repository.TeamRepository
	uploader *storage.ImageUploader
	cache    pkgcache.Cache
	cacheTTL time.Duration
}

func NewTeamService(
	repo repository.TeamRepository,
	uploader *storage.ImageUploader,
	cache pkgcache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	return &teamService{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *teamService) Create(ctx context.Context, req model.CreateTeamMemberRequest, image *utils.FileUpload) (*model.TeamMember, error) {
	req.Normalize()

	member := &model.TeamMember{
		Name:     req.Name,
		Role:     req.Role,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	}
	member.ID = uuid.New().String()

	// Step 1: upload ảnh
	if image != nil {
		url, err := s.uploader.Upload(ctx, storage.PrefixTeamMembers, image.Filename, image.Data)
		if err != nil {
			return nil, fmt.Errorf("upload member image: %w", err)
		}
		member.ImageURL = url
	}

	// Step 2: lưu document, lỗi thì dọn blob vừa upload
	if err := s.repo.Create(ctx, member); err != nil {
		if image != nil {
			storage.DeleteQuietly(ctx, s.uploader.Store(), member.ImageURL)
		}
		return nil, fmt.Errorf("create member: %w", err)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	log.Info().Str("id", member.ID).Str("name", member.Name).Msg("team member created")

	return s.repo.GetByID(ctx, member.ID)
}

func (s *teamService) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *teamService) List(ctx context.Context) ([]*model.TeamMember, error) {
	return pkgcache.Remember(ctx, s.cache, model.CacheKeyList, s.cacheTTL, s.repo.List)
}

func (s *teamService) Update(ctx context.Context, id string, req model.UpdateTeamMemberRequest, image *utils.FileUpload) (*model.TeamMember, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if image != nil {
		url, err := s.uploader.Upload(ctx, storage.PrefixTeamMembers, image.Filename, image.Data)
		if err != nil {
			return nil, fmt.Errorf("upload member image: %w", err)
		}
		fields["imageUrl"] = url
	}
	if len(fields) == 0 {
		return nil, model.ErrNothingToUpdate
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if image != nil {
			storage.DeleteQuietly(ctx, s.uploader.Store(), fields["imageUrl"].(string))
		}
		return nil, err
	}

	// ảnh cũ không còn được tham chiếu
	if newURL, ok := fields["imageUrl"].(string); ok && existing.ImageURL != "" && newURL != existing.ImageURL {
		storage.DeleteQuietly(ctx, s.uploader.Store(), existing.ImageURL)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	return s.repo.GetByID(ctx, id)
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	storage.DeleteQuietly(ctx, s.uploader.Store(), member.ImageURL)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	log.Info().Str("id", id).Msg("team member deleted")
	return nil
}
