package service

import (
	"context"
	"fmt"
	"path"

	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/media/model"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
)

type ServiceInterface interface {
	// Upload kiểm tra extension + size rồi lưu dưới prefix uploads/
	Upload(ctx context.Context, file *utils.FileUpload) (*model.UploadResult, error)
}

type mediaService struct {
	blob storage.BlobStore
}

func NewMediaService(blob storage.BlobStore) ServiceInterface {
	return &mediaService{blob: blob}
}

func (s *mediaService) Upload(ctx context.Context, file *utils.FileUpload) (*model.UploadResult, error) {
	if file == nil {
		return nil, model.ErrNoFile
	}
	if err := storage.ValidateUpload(file.Filename, file.Size); err != nil {
		return nil, err
	}

	key := storage.ObjectKey(storage.PrefixUploads, file.Filename)
	url, err := s.blob.Upload(ctx, key, file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	log.Info().Str("key", key).Int64("size", file.Size).Msg("file uploaded")
	return &model.UploadResult{URL: url, Filename: path.Base(key), Size: file.Size}, nil
}
