package service

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"qbrain-backend/internal/domains/site/content"
	"qbrain-backend/internal/domains/site/model"
)

// LoadContent đọc YAML từ path; path rỗng thì dùng file embed
func LoadContent(path string) (*model.Content, error) {
	data := content.Default
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read site content: %w", err)
		}
		data = b
	}
	return ParseContent(data)
}

func ParseContent(data []byte) (*model.Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c model.Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidContent, err)
	}
	if c.Hero.Title == "" {
		return nil, fmt.Errorf("%w: hero.title is required", model.ErrInvalidContent)
	}
	return &c, nil
}
