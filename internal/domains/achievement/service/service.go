package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/achievement/model"
	"qbrain-backend/internal/domains/achievement/repository"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
	pkgcache "qbrain-backend/pkg/cache"
)

type hackathonService struct {
	repo     repository.HackathonRepository
	uploader *storage.ImageUploader
	cache    pkgcache.Cache
	cacheTTL time.Duration
}

func NewHackathonService(
	repo repository.HackathonRepository,
	uploader *storage.ImageUploader,
	cache pkgcache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	return &hackathonService{repo: repo, uploader: uploader, cache: cache, cacheTTL: cacheTTL}
}

func (s *hackathonService) Create(ctx context.Context, req model.CreateHackathonRequest, image *utils.FileUpload) (*model.Hackathon, error) {
	req.Normalize()
	h := req.ToEntity()
	h.ID = uuid.New().String()

	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		h.ImageURL = url
	}

	if err := s.repo.Create(ctx, h); err != nil {
		if image != nil {
			storage.DeleteQuietly(ctx, s.uploader.Store(), h.ImageURL)
		}
		return nil, fmt.Errorf("create achievement: %w", err)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	log.Info().Str("id", h.ID).Str("title", h.Title).Msg("achievement created")
	return s.repo.GetByID(ctx, h.ID)
}

func (s *hackathonService) Get(ctx context.Context, id string) (*model.Hackathon, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *hackathonService) List(ctx context.Context) ([]*model.Hackathon, error) {
	return pkgcache.Remember(ctx, s.cache, model.CacheKeyList, s.cacheTTL, s.repo.List)
}

func (s *hackathonService) Update(ctx context.Context, id string, req model.UpdateHackathonRequest, image *utils.FileUpload) (*model.Hackathon, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	var uploaded string
	if image != nil {
		if uploaded, err = s.uploadImage(ctx, image); err != nil {
			return nil, err
		}
		fields["imageUrl"] = uploaded
	}
	if len(fields) == 0 {
		return nil, model.ErrNothingToUpdate
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		storage.DeleteQuietly(ctx, s.uploader.Store(), uploaded)
		return nil, err
	}

	if newURL, ok := fields["imageUrl"].(string); ok && existing.ImageURL != "" && newURL != existing.ImageURL {
		storage.DeleteQuietly(ctx, s.uploader.Store(), existing.ImageURL)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	return s.repo.GetByID(ctx, id)
}

func (s *hackathonService) Delete(ctx context.Context, id string) error {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	storage.DeleteQuietly(ctx, s.uploader.Store(), h.ImageURL)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	log.Info().Str("id", id).Msg("achievement deleted")
	return nil
}

func (s *hackathonService) uploadImage(ctx context.Context, image *utils.FileUpload) (string, error) {
	url, err := s.uploader.Upload(ctx, storage.PrefixHackathons, image.Filename, image.Data)
	if err != nil {
		return "", fmt.Errorf("upload achievement image: %w", err)
	}
	return url, nil
}
