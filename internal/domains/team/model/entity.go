package model

import "qbrain-backend/internal/infrastructure/docstore"

// TeamMember là một thành viên hiển thị ở trang Team
type TeamMember struct {
	docstore.Meta
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}
