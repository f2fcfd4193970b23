package model

import "qbrain-backend/internal/infrastructure/docstore"

// Hackathon - một thành tích (hackathon, cuộc thi, project, giải thưởng)
type Hackathon struct {
	docstore.Meta
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"` // YYYY-MM-DD
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
