package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Key prefixes per entity
const (
	PrefixTeamMembers = "team-members"
	PrefixHackathons  = "hackathons"
	PrefixBlogImages  = "blog-images"
	PrefixResumes     = "resumes"
	PrefixUploads     = "uploads"
)

// MaxUploadSize là giới hạn chung cho mọi file upload (10MB)
const MaxUploadSize = 10 << 20

var (
	ErrFileTooLarge     = errors.New("file exceeds 10MB limit")
	ErrFileTypeNotAllow = errors.New("invalid file type. Only images and documents are allowed")
	ErrEmptyFile        = errors.New("file is empty")
	ErrInvalidImage     = errors.New("not a valid image")
)

var (
	uploadExtensions = map[string]bool{
		".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
		".pdf": true, ".doc": true, ".docx": true,
	}
	resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	unsafeNameChars  = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// BlobStore là abstraction cho object storage (MinIO hoặc local disk)
type BlobStore interface {
	// Upload lưu data tại key, trả về public URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL trả về key nếu url thuộc store này
	KeyFromURL(url string) (string, bool)
}

// ObjectKey tạo key dạng <prefix>/<uuid>-<tên file đã sanitize>
func ObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s-%s", prefix, uuid.New().String(), SanitizeFilename(filename))
}

// SanitizeFilename bỏ path và ký tự lạ khỏi tên file
func SanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > 100 {
		ext := filepath.Ext(name)
		if len(ext) > 10 {
			ext = ""
		}
		name = name[:100-len(ext)] + ext
	}
	return name
}

// ValidateUpload checks the generic /api/upload rules: allowed extension and size
func ValidateUpload(filename string, size int64) error {
	if size <= 0 {
		return ErrEmptyFile
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	if !uploadExtensions[strings.ToLower(filepath.Ext(filename))] {
		return ErrFileTypeNotAllow
	}
	return nil
}

// ValidateResume chỉ nhận pdf/doc/docx
func ValidateResume(filename string, size int64) error {
	if size <= 0 {
		return ErrEmptyFile
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	if !resumeExtensions[strings.ToLower(filepath.Ext(filename))] {
		return fmt.Errorf("%w: resume must be pdf, doc or docx", ErrFileTypeNotAllow)
	}
	return nil
}

// DeleteByURL xóa blob theo public URL. URL rỗng hoặc không thuộc store thì bỏ qua.
func DeleteByURL(ctx context.Context, store BlobStore, url string) error {
	if store == nil || url == "" {
		return nil
	}
	key, ok := store.KeyFromURL(url)
	if !ok {
		return nil
	}
	return store.Delete(ctx, key)
}

// DeleteQuietly xóa blob best effort, lỗi chỉ log
func DeleteQuietly(ctx context.Context, store BlobStore, url string) {
	if err := DeleteByURL(ctx, store, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("blob delete failed")
	}
}

// keyFromBase strips base + "/" from url
func keyFromBase(base, url string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", false
	}
	return key, true
}
