package model

import "qbrain-backend/internal/infrastructure/docstore"

type ContactMessage struct {
	docstore.Meta
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
