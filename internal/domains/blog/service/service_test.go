package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/domains/blog/model"
	"qbrain-backend/internal/domains/blog/repository"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/mocks"
	"qbrain-backend/internal/shared/testutil"
)

func setup(t *testing.T) (*blogService, *mocks.MockBlobStore) {
	blob := mocks.NewMockBlobStore()
	svc := NewBlogService(
		repository.NewBlogRepository(testutil.NewStore(t)),
		storage.NewImageUploader(blob, nil), nil, time.Minute,
		SiteInfo{Name: "Qbrain Blog", URL: "https://qbrain.in/", Description: "Notes from the team"},
	).(*blogService)
	return svc, blob
}

func str(s string) *string { return &s }

func post(title, content string) model.BlogPostRequest {
	return model.BlogPostRequest{Title: str(title), Content: str(content)}
}

func TestCreate_DerivedFields(t *testing.T) {
	svc, _ := setup(t)
	content := strings.TrimSpace(strings.Repeat("word ", 201))

	req := post("Smart India Hackathon 2025: Our Journey!", content)
	req.Excerpt = str("How we got to the finals")
	req.Tags = &[]string{"SIH", " sih ", "AI", ""}

	p, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, "smart-india-hackathon-2025-our-journey", p.Slug)
	assert.Equal(t, 2, p.ReadTime)
	assert.Equal(t, model.DefaultAuthor, p.Author)
	assert.Equal(t, model.StatusDraft, p.Status)
	assert.Equal(t, []string{"SIH", "AI"}, p.Tags)
	assert.Equal(t, p.Title, p.SEO.MetaTitle)
	assert.Equal(t, "How we got to the finals", p.SEO.MetaDescription)
	assert.Nil(t, p.PublishedAt)
}

func TestCreate_SlugMadeUnique(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	var slugs []string
	for i := 0; i < 3; i++ {
		p, err := svc.Create(ctx, post("Hello World", "body"), nil)
		require.NoError(t, err)
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"hello-world", "hello-world-2", "hello-world-3"}, slugs)
}

func TestCreate_SymbolOnlyTitleFallsBack(t *testing.T) {
	svc, _ := setup(t)

	p, err := svc.Create(context.Background(), post("!!!", "body"), nil)
	require.NoError(t, err)
	assert.Equal(t, "post-"+p.ID[:8], p.Slug)
}

func TestPublishedAt_SetOnce(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	p, err := svc.Create(ctx, post("Launch", "body"), nil)
	require.NoError(t, err)
	require.Nil(t, p.PublishedAt)

	p, err = svc.Update(ctx, p.ID, model.BlogPostRequest{Status: str(model.StatusPublished)}, nil)
	require.NoError(t, err)
	require.NotNil(t, p.PublishedAt)
	assert.True(t, first.Equal(*p.PublishedAt))

	svc.now = func() time.Time { return first.Add(48 * time.Hour) }
	p, err = svc.Update(ctx, p.ID, model.BlogPostRequest{Excerpt: str("edited")}, nil)
	require.NoError(t, err)
	assert.True(t, first.Equal(*p.PublishedAt))
}

func TestUpdate_SlugFollowsTitle(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, post("Old Title", "body"), nil)
	require.NoError(t, err)

	p, err = svc.Update(ctx, p.ID, model.BlogPostRequest{Content: str("longer body text")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "old-title", p.Slug)
	assert.Equal(t, 1, p.ReadTime)

	p, err = svc.Update(ctx, p.ID, model.BlogPostRequest{Title: str("New Title")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new-title", p.Slug)
}

func TestPublicReads_OnlyPublished(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, post("Draft Post", "body"), nil)
	require.NoError(t, err)

	req := post("Live Post", "body")
	req.Status = str(model.StatusPublished)
	req.Category = str("Hackathons")
	req.Tags = &[]string{"AI"}
	live, err := svc.Create(ctx, req, nil)
	require.NoError(t, err)

	list, err := svc.ListPublished(ctx, model.ListPostsFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, live.ID, list[0].ID)

	list, err = svc.ListPublished(ctx, model.ListPostsFilter{Tag: "ai"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListPublished(ctx, model.ListPostsFilter{Category: "Tutorials"})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetPublishedBySlug(ctx, draft.Slug)
	assert.ErrorIs(t, err, model.ErrPostNotFound)

	got, err := svc.GetPublishedBySlug(ctx, "live-post")
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)

	all, err := svc.ListAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListAll(ctx, "archived")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func publish(t *testing.T, svc *blogService, title, category string) *model.BlogPost {
	t.Helper()
	req := post(title, "body")
	req.Status = str(model.StatusPublished)
	req.Category = str(category)
	p, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)
	return p
}

func TestListPublished_CategoryCacheKeepsCase(t *testing.T) {
	svc, _ := setup(t)
	svc.cache = mocks.NewMemoryCache()
	ctx := context.Background()

	upper := publish(t, svc, "Upper", "AI")
	lower := publish(t, svc, "Lower", "ai")

	list, err := svc.ListPublished(ctx, model.ListPostsFilter{Category: "AI"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, upper.ID, list[0].ID)

	list, err = svc.ListPublished(ctx, model.ListPostsFilter{Category: "ai"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, lower.ID, list[0].ID)
}

func TestGetPublishedBySlug_CachedUntilWrite(t *testing.T) {
	svc, _ := setup(t)
	c := mocks.NewMemoryCache()
	svc.cache = c
	ctx := context.Background()

	p := publish(t, svc, "Cached Post", "General")
	got, err := svc.GetPublishedBySlug(ctx, " Cached-Post ")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, c.Has(model.CacheKeySlug+"cached-post"))

	_, err = svc.Update(ctx, p.ID, model.BlogPostRequest{Status: str(model.StatusDraft)}, nil)
	require.NoError(t, err)
	assert.False(t, c.Has(model.CacheKeySlug+"cached-post"))

	_, err = svc.GetPublishedBySlug(ctx, "cached-post")
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestSave_DoesNotRecreateDeletedPost(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, post("Short Lived", "body"), nil)
	require.NoError(t, err)
	stale, err := svc.repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.repo.Delete(ctx, p.ID))
	stale.Title = "Edited"
	assert.ErrorIs(t, svc.repo.Save(ctx, stale), model.ErrPostNotFound)

	_, err = svc.repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestDelete_RemovesFeaturedImage(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()
	key := "blog-images/abc-cover.png"
	blob.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(blob.URL(key), nil)
	blob.On("Delete", mock.Anything, key).Return(nil).Once()

	p, err := svc.Create(ctx, post("Cover", "body"), testutil.ImageFile(t, "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, blob.URL(key), p.FeaturedImage)

	require.NoError(t, svc.Delete(ctx, p.ID))
	blob.AssertExpectations(t)
}

func TestFeeds(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	req := post("Live & Well", "body")
	req.Status = str(model.StatusPublished)
	req.Excerpt = str("Summary <b>here</b>")
	_, err := svc.Create(ctx, req, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, post("Hidden Draft", "body"), nil)
	require.NoError(t, err)

	rss, err := svc.RSSFeed(ctx)
	require.NoError(t, err)
	feed := string(rss)
	assert.Contains(t, feed, `<rss version="2.0">`)
	assert.Contains(t, feed, "<link>https://qbrain.in/blog/live-well</link>")
	assert.Contains(t, feed, "Live &amp; Well")
	assert.Contains(t, feed, "Summary &lt;b&gt;here&lt;/b&gt;")
	assert.NotContains(t, feed, "hidden-draft")

	sitemap, err := svc.Sitemap(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://qbrain.in/</loc>")
	assert.Contains(t, string(sitemap), "<loc>https://qbrain.in/blog/live-well</loc>")
	assert.NotContains(t, string(sitemap), "hidden-draft")
}

func TestRequestValidation(t *testing.T) {
	assert.Error(t, model.BlogPostRequest{Content: str("body")}.ValidateCreate())
	assert.Error(t, post("   ", "body").ValidateCreate())
	assert.Error(t, model.BlogPostRequest{Title: str("T")}.ValidateCreate())
	assert.NoError(t, post("T", "body").ValidateCreate())

	bad := post("T", "body")
	bad.FAQ = &[]model.FAQ{{Question: "Why?"}}
	assert.Error(t, bad.ValidateCreate())

	assert.NoError(t, model.BlogPostRequest{}.ValidateUpdate())
	assert.Error(t, model.BlogPostRequest{Status: str("archived")}.ValidateUpdate())
}
