package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"qbrain-backend/internal/shared/utils"
)

type CreateHackathonRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	Status       string   `json:"status"`
	Result       string   `json:"result"`
	Technologies []string `json:"technologies"`
	TeamSize     int      `json:"teamSize"`
	Prize        string   `json:"prize"`
	Category     string   `json:"category"`
	Highlights   []string `json:"highlights"`
	Impact       string   `json:"impact"`
	ImageURL     string   `json:"imageUrl"`
}

// Normalize trim text, làm sạch list và điền default status/category
func (r *CreateHackathonRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	r.Location = strings.TrimSpace(r.Location)
	r.Result = strings.TrimSpace(r.Result)
	r.Prize = strings.TrimSpace(r.Prize)
	r.Impact = strings.TrimSpace(r.Impact)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Technologies = utils.CleanList(r.Technologies)
	r.Highlights = utils.CleanList(r.Highlights)
	if r.Status == "" {
		r.Status = StatusCompleted
	}
	if r.Category == "" {
		r.Category = CategoryHackathon
	}
}

func (r CreateHackathonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Status, validation.In(Statuses...)),
		validation.Field(&r.Category, validation.In(Categories...)),
		validation.Field(&r.TeamSize, validation.Min(0), validation.Max(100)),
	)
}

func (r CreateHackathonRequest) ToEntity() *Hackathon {
	return &Hackathon{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Location:     r.Location,
		Status:       r.Status,
		Result:       r.Result,
		Technologies: r.Technologies,
		TeamSize:     r.TeamSize,
		Prize:        r.Prize,
		Category:     r.Category,
		Highlights:   r.Highlights,
		Impact:       r.Impact,
		ImageURL:     r.ImageURL,
	}
}

// UpdateHackathonRequest - field nil thì giữ nguyên
type UpdateHackathonRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Date         *string   `json:"date"`
	Location     *string   `json:"location"`
	Status       *string   `json:"status"`
	Result       *string   `json:"result"`
	Technologies *[]string `json:"technologies"`
	TeamSize     *int      `json:"teamSize"`
	Prize        *string   `json:"prize"`
	Category     *string   `json:"category"`
	Highlights   *[]string `json:"highlights"`
	Impact       *string   `json:"impact"`
	ImageURL     *string   `json:"imageUrl"`
}

func (r UpdateHackathonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.Date, validation.NilOrNotEmpty, validation.Date(DateLayout)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(Statuses...)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.In(Categories...)),
		validation.Field(&r.TeamSize, validation.Min(0), validation.Max(100)),
	)
}

func (r UpdateHackathonRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = strings.TrimSpace(*v)
		}
	}
	setString("title", r.Title)
	setString("description", r.Description)
	setString("date", r.Date)
	setString("location", r.Location)
	setString("status", r.Status)
	setString("result", r.Result)
	setString("prize", r.Prize)
	setString("category", r.Category)
	setString("impact", r.Impact)
	setString("imageUrl", r.ImageURL)
	if r.Technologies != nil {
		fields["technologies"] = utils.CleanList(*r.Technologies)
	}
	if r.Highlights != nil {
		fields["highlights"] = utils.CleanList(*r.Highlights)
	}
	if r.TeamSize != nil {
		fields["teamSize"] = *r.TeamSize
	}
	return fields
}
