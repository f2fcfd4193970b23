package storage

import (
	"context"
	"path/filepath"
	"strings"
)

// ImageUploader chuẩn hóa ảnh rồi lưu vào BlobStore dưới prefix của entity
type ImageUploader struct {
	store     BlobStore
	processor *ImageProcessor
}

func NewImageUploader(store BlobStore, processor *ImageProcessor) *ImageUploader {
	if processor == nil {
		processor = NewImageProcessor()
	}
	return &ImageUploader{store: store, processor: processor}
}

// Upload returns the public URL of the stored image
func (u *ImageUploader) Upload(ctx context.Context, prefix, filename string, data []byte) (string, error) {
	img, err := u.processor.Process(data)
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(filename, filepath.Ext(filename)) + img.Ext
	return u.store.Upload(ctx, ObjectKey(prefix, name), img.Data, img.ContentType)
}

// Store exposes the underlying blob store (for deletes)
func (u *ImageUploader) Store() BlobStore { return u.store }
