package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Remember trả về value cached tại key; cache miss thì gọi load và lưu lại.
// Lỗi cache chỉ được log, không bao giờ làm fail request.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if c != nil {
		found, err := c.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return cached, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if c != nil {
		if err := c.Set(ctx, key, value, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return value, nil
}

// Invalidate xóa các pattern, lỗi chỉ log
func Invalidate(ctx context.Context, c Cache, patterns ...string) {
	if c == nil {
		return
	}
	for _, p := range patterns {
		if err := c.DeletePattern(ctx, p); err != nil {
			log.Warn().Err(err).Str("pattern", p).Msg("cache invalidate failed")
		}
	}
}
