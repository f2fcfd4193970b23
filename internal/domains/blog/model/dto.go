package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// BlogPostRequest dùng cho cả create và update (update: field nil giữ nguyên)
type BlogPostRequest struct {
	Title         *string   `json:"title"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	FeaturedImage *string   `json:"featuredImage"`
	Author        *string   `json:"author"`
	Tags          *[]string `json:"tags"`
	Category      *string   `json:"category"`
	Status        *string   `json:"status"`
	SEO           *SEO      `json:"seo"`
	FAQ           *[]FAQ    `json:"faq"`
}

// ValidateCreate - title và content bắt buộc
func (r BlogPostRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.By(notBlank), validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required, validation.By(notBlank)),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Status, validation.In(Statuses...)),
		validation.Field(&r.SEO),
		validation.Field(&r.FAQ),
	)
}

func (r BlogPostRequest) ValidateUpdate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.By(notBlank), validation.Length(1, 200)),
		validation.Field(&r.Content, validation.NilOrNotEmpty, validation.By(notBlank)),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(Statuses...)),
		validation.Field(&r.SEO),
		validation.Field(&r.FAQ),
	)
}

func (s SEO) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.MetaTitle, validation.Length(0, 200)),
		validation.Field(&s.MetaDescription, validation.Length(0, 500)),
		validation.Field(&s.CanonicalURL, is.URL),
	)
}

func (f FAQ) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required),
		validation.Field(&f.Answer, validation.Required),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(*string)
	if s != nil && strings.TrimSpace(*s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

// ListPostsFilter - query string của /api/blog và /api/admin/blog
type ListPostsFilter struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
}
