package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/infrastructure/storage"
)

var ErrInvalidPayload = errors.New("invalid request payload")

// FileUpload is a multipart file read into memory
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Ext returns the lowercased extension without the dot ("pdf")
func (f *FileUpload) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Filename)), ".")
}

// ReadFormFile reads an optional multipart file field into memory.
// A missing field returns (nil, nil).
func ReadFormFile(c *gin.Context, field string) (*FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read form file %s: %w", field, err)
	}
	if header.Size > storage.MaxUploadSize {
		return nil, storage.ErrFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open form file %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", field, err)
	}
	if int64(len(data)) > storage.MaxUploadSize {
		return nil, storage.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &FileUpload{
		Filename:    filepath.Base(header.Filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// IsMultipart reports whether the request body is multipart/form-data
func IsMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// BindPayload decodes the entity payload of a create/update request. Multipart
// requests carry it as JSON in the dataField form value (next to the file),
// anything else is a plain JSON body.
func BindPayload(c *gin.Context, dataField string, dst interface{}) error {
	if IsMultipart(c) {
		raw := c.PostForm(dataField)
		if raw == "" {
			return fmt.Errorf("%w: missing %q field", ErrInvalidPayload, dataField)
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
