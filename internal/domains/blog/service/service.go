package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/blog/model"
	"qbrain-backend/internal/domains/blog/repository"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
	pkgcache "qbrain-backend/pkg/cache"
)

// maxSlugAttempts giới hạn số hậu tố -2, -3... trước khi dùng hậu tố ngẫu nhiên
const maxSlugAttempts = 50

// meta description mặc định lấy từ excerpt, cắt theo giới hạn hiển thị của search engine
const maxMetaDescription = 160

type blogService struct {
	repo     repository.BlogRepository
	uploader *storage.ImageUploader
	cache    pkgcache.Cache
	cacheTTL time.Duration
	site     SiteInfo
	now      func() time.Time
}

// SiteInfo dùng cho RSS/sitemap
type SiteInfo struct {
	Name        string
	URL         string
	Description string
}

func NewBlogService(
	repo repository.BlogRepository,
	uploader *storage.ImageUploader,
	cache pkgcache.Cache,
	cacheTTL time.Duration,
	site SiteInfo,
) ServiceInterface {
	site.URL = strings.TrimRight(site.URL, "/")
	return &blogService{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
		cacheTTL: cacheTTL,
		site:     site,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// =====================================================
// ADMIN
// =====================================================

func (s *blogService) Create(ctx context.Context, req model.BlogPostRequest, image *utils.FileUpload) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	post.ID = uuid.New().String()
	applyRequest(post, req)

	// Step 1: slug từ title, unique trong collection
	slug, err := s.uniqueSlug(ctx, baseSlug(post), post.ID)
	if err != nil {
		return nil, err
	}
	post.Slug = slug

	// Step 2: field dẫn xuất
	s.derive(post)

	// Step 3: featured image
	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		post.FeaturedImage = url
	}

	// Step 4: lưu
	if err := s.repo.Create(ctx, post); err != nil {
		if image != nil {
			storage.DeleteQuietly(ctx, s.uploader.Store(), post.FeaturedImage)
		}
		return nil, fmt.Errorf("create blog post: %w", err)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	log.Info().Str("id", post.ID).Str("slug", post.Slug).Str("status", post.Status).Msg("blog post created")
	return s.repo.GetByID(ctx, post.ID)
}

func (s *blogService) Update(ctx context.Context, id string, req model.BlogPostRequest, image *utils.FileUpload) (*model.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldTitle, oldImage := post.Title, post.FeaturedImage

	applyRequest(post, req)
	if post.Title != oldTitle || post.Slug == "" {
		if post.Slug, err = s.uniqueSlug(ctx, baseSlug(post), post.ID); err != nil {
			return nil, err
		}
	}
	s.derive(post)

	var uploaded string
	if image != nil {
		if uploaded, err = s.uploadImage(ctx, image); err != nil {
			return nil, err
		}
		post.FeaturedImage = uploaded
	}

	if err := s.repo.Save(ctx, post); err != nil {
		storage.DeleteQuietly(ctx, s.uploader.Store(), uploaded)
		return nil, fmt.Errorf("update blog post: %w", err)
	}

	if oldImage != "" && post.FeaturedImage != oldImage {
		storage.DeleteQuietly(ctx, s.uploader.Store(), oldImage)
	}

	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) Get(ctx context.Context, id string) (*model.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) ListAll(ctx context.Context, status string) ([]*model.BlogPost, error) {
	if status != "" && status != model.StatusDraft && status != model.StatusPublished {
		return nil, model.ErrInvalidStatus
	}
	return s.repo.ListAll(ctx, status)
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	storage.DeleteQuietly(ctx, s.uploader.Store(), post.FeaturedImage)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	pkgcache.Invalidate(ctx, s.cache, model.CachePattern)
	log.Info().Str("id", id).Str("slug", post.Slug).Msg("blog post deleted")
	return nil
}

// =====================================================
// PUBLIC
// =====================================================

func (s *blogService) ListPublished(ctx context.Context, filter model.ListPostsFilter) ([]*model.BlogPost, error) {
	// key giữ nguyên hoa thường vì store so sánh category chính xác
	category := strings.TrimSpace(filter.Category)
	key := model.CacheKeyPublished + category
	posts, err := pkgcache.Remember(ctx, s.cache, key, s.cacheTTL, func(ctx context.Context) ([]*model.BlogPost, error) {
		return s.repo.ListPublished(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	if filter.Tag == "" {
		return posts, nil
	}
	tagged := make([]*model.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(filter.Tag) {
			tagged = append(tagged, p)
		}
	}
	return tagged, nil
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	return pkgcache.Remember(ctx, s.cache, model.CacheKeySlug+slug, s.cacheTTL, func(ctx context.Context) (*model.BlogPost, error) {
		return s.repo.GetPublishedBySlug(ctx, slug)
	})
}

// =====================================================
// HELPERS
// =====================================================

// applyRequest chép các field != nil của req vào post
func applyRequest(post *model.BlogPost, req model.BlogPostRequest) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&post.Title, req.Title)
	set(&post.Excerpt, req.Excerpt)
	set(&post.FeaturedImage, req.FeaturedImage)
	set(&post.Author, req.Author)
	set(&post.Category, req.Category)
	set(&post.Status, req.Status)
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.SEO != nil {
		post.SEO = *req.SEO
	}
	if req.FAQ != nil {
		post.FAQ = *req.FAQ
	}
}

// derive điền default và tính lại các field dẫn xuất
func (s *blogService) derive(post *model.BlogPost) {
	if post.Author == "" {
		post.Author = model.DefaultAuthor
	}
	if post.Category == "" {
		post.Category = model.DefaultCategory
	}
	if post.Status == "" {
		post.Status = model.StatusDraft
	}

	post.Tags = utils.CleanList(post.Tags)
	post.SEO.Keywords = utils.CleanList(post.SEO.Keywords)
	post.SEO.MetaTitle = strings.TrimSpace(post.SEO.MetaTitle)
	post.SEO.MetaDescription = strings.TrimSpace(post.SEO.MetaDescription)
	if post.SEO.MetaTitle == "" {
		post.SEO.MetaTitle = post.Title
	}
	if post.SEO.MetaDescription == "" {
		post.SEO.MetaDescription = utils.Truncate(post.Excerpt, maxMetaDescription)
	}
	if post.FAQ == nil {
		post.FAQ = []model.FAQ{}
	}

	post.ReadTime = utils.ReadTime(post.Content)

	// publishedAt chỉ set lần đầu bài được publish
	if post.IsPublished() && post.PublishedAt == nil {
		now := s.now()
		post.PublishedAt = &now
	}
}

func baseSlug(post *model.BlogPost) string {
	if slug := utils.GenerateSlug(post.Title); slug != "" {
		return slug
	}
	return "post-" + post.ID[:8]
}

// uniqueSlug thêm hậu tố -2, -3... cho tới khi slug chưa bị bài khác dùng
func (s *blogService) uniqueSlug(ctx context.Context, base, postID string) (string, error) {
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := s.repo.SlugTaken(ctx, candidate, postID)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return fmt.Sprintf("%s-%s", base, uuid.New().String()[:8]), nil
}

func (s *blogService) uploadImage(ctx context.Context, image *utils.FileUpload) (string, error) {
	url, err := s.uploader.Upload(ctx, storage.PrefixBlogImages, image.Filename, image.Data)
	if err != nil {
		return "", fmt.Errorf("upload featured image: %w", err)
	}
	return url, nil
}
