package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/site/model"
	pkgcache "qbrain-backend/pkg/cache"
)

// Counter đếm document trong một collection
type Counter func(ctx context.Context) (int64, error)

type ServiceInterface interface {
	// Content trả nội dung tĩnh, hero stats lấy từ DB khi có dữ liệu
	Content(ctx context.Context) *model.Content
}

type siteService struct {
	content    *model.Content
	members    Counter
	hackathons Counter
	cache      pkgcache.Cache
	cacheTTL   time.Duration
}

func NewSiteService(content *model.Content, members, hackathons Counter, cache pkgcache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &siteService{
		content:    content,
		members:    members,
		hackathons: hackathons,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (s *siteService) Content(ctx context.Context) *model.Content {
	out := *s.content
	out.OpenPositions = len(out.OpenRoles())
	if n := s.count(ctx, model.CacheKeyMemberCount, s.members); n > 0 {
		out.Hero.Stats.Members = n
	}
	if n := s.count(ctx, model.CacheKeyHackathonCount, s.hackathons); n > 0 {
		out.Hero.Stats.Hackathons = n
	}
	return &out
}

// count lỗi thì trả 0 để giữ số tĩnh
func (s *siteService) count(ctx context.Context, key string, counter Counter) int64 {
	if counter == nil {
		return 0
	}
	n, err := pkgcache.Remember(ctx, s.cache, key, s.cacheTTL, counter)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("site stats count failed")
		return 0
	}
	return n
}
