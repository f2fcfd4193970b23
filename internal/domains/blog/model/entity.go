package model

import (
	"time"

	"qbrain-backend/internal/infrastructure/docstore"
)

type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	CanonicalURL    string   `json:"canonicalUrl"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BlogPost - slug và readTime là field dẫn xuất, luôn tính lại khi lưu
type BlogPost struct {
	docstore.Meta
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage string     `json:"featuredImage"`
	Author        string     `json:"author"`
	Tags          []string   `json:"tags"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	SEO           SEO        `json:"seo"`
	FAQ           []FAQ      `json:"faq"`
	ReadTime      int        `json:"readTime"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
}

func (p *BlogPost) IsPublished() bool {
	return p.Status == StatusPublished
}

// HasTag so sánh không phân biệt hoa thường
func (p *BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if equalFold(t, tag) {
			return true
		}
	}
	return false
}
