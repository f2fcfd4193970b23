package model

import "strings"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	DefaultAuthor   = "Qbrain Team"
	DefaultCategory = "General"

	CachePattern      = "blog:*"
	CacheKeyPublished = "blog:published:"
	CacheKeySlug      = "blog:slug:"
	FormDataField     = "data"
	FormImageField    = "featuredImage"
)

var Statuses = []interface{}{StatusDraft, StatusPublished}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
