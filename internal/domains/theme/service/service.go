package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/theme/model"
	"qbrain-backend/internal/domains/theme/repository"
	pkgcache "qbrain-backend/pkg/cache"
)

// Broadcaster đẩy event tới các client đang nghe theme live
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}

type ServiceInterface interface {
	// Get không bao giờ fail: thiếu document thì tạo default, lỗi store thì trả default
	Get(ctx context.Context) *model.ThemeConfig

	// Update merge từng key vào theme hiện tại rồi broadcast
	Update(ctx context.Context, req model.UpdateThemeRequest) (*model.ThemeConfig, error)

	// Reset ghi đè bằng default rồi broadcast
	Reset(ctx context.Context) (*model.ThemeConfig, error)

	// CSS render theme thành :root { --color-primary: ...; }
	CSS(ctx context.Context) string
}

type themeService struct {
	repo     repository.ThemeRepository
	hub      Broadcaster
	cache    pkgcache.Cache
	cacheTTL time.Duration
}

func NewThemeService(repo repository.ThemeRepository, hub Broadcaster, cache pkgcache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &themeService{repo: repo, hub: hub, cache: cache, cacheTTL: cacheTTL}
}

func (s *themeService) Get(ctx context.Context) *model.ThemeConfig {
	theme, err := pkgcache.Remember(ctx, s.cache, model.CacheKeyTheme, s.cacheTTL, s.load)
	if err != nil {
		// lỗi store không được cache, lần sau đọc lại
		log.Error().Err(err).Msg("failed to load theme, using default")
		return model.DefaultTheme()
	}
	return theme
}

func (s *themeService) load(ctx context.Context) (*model.ThemeConfig, error) {
	theme, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		return withDefaults(theme), nil
	case errors.Is(err, model.ErrThemeNotFound):
		def := model.DefaultTheme()
		if err := s.repo.Save(ctx, def); err != nil {
			log.Error().Err(err).Msg("failed to store default theme")
		}
		return def, nil
	default:
		return nil, err
	}
}

func (s *themeService) Update(ctx context.Context, req model.UpdateThemeRequest) (*model.ThemeConfig, error) {
	current, err := s.repo.Get(ctx)
	if errors.Is(err, model.ErrThemeNotFound) {
		current, err = model.DefaultTheme(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	theme := withDefaults(current).Clone()
	for name, values := range req {
		section := theme.Section(name)
		if section == nil {
			continue
		}
		for k, v := range values {
			(*section)[k] = strings.TrimSpace(v)
		}
	}

	if err := s.repo.Save(ctx, theme); err != nil {
		return nil, fmt.Errorf("save theme: %w", err)
	}
	saved, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload theme: %w", err)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	s.broadcast(saved)
	log.Info().Int("sections", len(req)).Msg("theme updated")
	return saved, nil
}

func (s *themeService) Reset(ctx context.Context) (*model.ThemeConfig, error) {
	if err := s.repo.Save(ctx, model.DefaultTheme()); err != nil {
		return nil, fmt.Errorf("reset theme: %w", err)
	}
	theme, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload theme: %w", err)
	}
	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	s.broadcast(theme)
	log.Info().Msg("theme reset to default")
	return theme, nil
}

func (s *themeService) CSS(ctx context.Context) string {
	return RenderCSS(s.Get(ctx))
}

func (s *themeService) broadcast(theme *model.ThemeConfig) {
	if s.hub != nil {
		s.hub.Broadcast(model.EventThemeUpdate, theme)
	}
}

// withDefaults điền các section/key bị thiếu từ default theme
func withDefaults(theme *model.ThemeConfig) *model.ThemeConfig {
	def := model.DefaultTheme()
	for _, s := range def.Sections() {
		section := theme.Section(s.Name)
		if *section == nil {
			*section = model.Section{}
		}
		for k, v := range s.Values {
			if _, ok := (*section)[k]; !ok {
				(*section)[k] = v
			}
		}
	}
	return theme
}

// RenderCSS xuất CSS custom properties, key sort để output ổn định
func RenderCSS(theme *model.ThemeConfig) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, s := range theme.Sections() {
		prefix := model.CSSPrefixes[s.Name]
		keys := make([]string, 0, len(s.Values))
		for k := range s.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !model.SafeValue(s.Values[k]) {
				continue
			}
			fmt.Fprintf(&b, "  %s%s: %s;\n", prefix, kebab(k), s.Values[k])
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// kebab: textSecondary -> text-secondary
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
