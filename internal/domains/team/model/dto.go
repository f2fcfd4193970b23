package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTeamMemberRequest - payload tạo thành viên (JSON hoặc field "data" của multipart)
type CreateTeamMemberRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

func (r *CreateTeamMemberRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	r.Bio = strings.TrimSpace(r.Bio)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

func (r CreateTeamMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Role, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.ImageURL, validation.Length(0, 500)),
	)
}

// UpdateTeamMemberRequest - chỉ các field != nil được cập nhật
type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
}

func (r UpdateTeamMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Role, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.ImageURL, validation.Length(0, 500)),
	)
}

// Fields trả về các field cần merge (đã trim)
func (r UpdateTeamMemberRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Role != nil {
		fields["role"] = strings.TrimSpace(*r.Role)
	}
	if r.Bio != nil {
		fields["bio"] = strings.TrimSpace(*r.Bio)
	}
	if r.ImageURL != nil {
		fields["imageUrl"] = strings.TrimSpace(*r.ImageURL)
	}
	return fields
}
