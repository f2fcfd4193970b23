package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ProcessedImage là kết quả sau khi chuẩn hóa ảnh
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Ext         string // ".jpg", ".png", ".gif"
}

type ImageProcessor struct {
	MaxSize      int64 // bytes (default: 10MB)
	MaxDimension int   // px (default: 1600)
	Quality      int
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: MaxUploadSize, MaxDimension: 1600, Quality: 85}
}

// ValidateImage check JPEG/PNG/GIF, throw err nếu file > max size
func (p *ImageProcessor) ValidateImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > p.MaxSize {
		return "", ErrFileTooLarge
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	switch format {
	case "jpeg", "png", "gif":
		return format, nil
	default:
		return "", fmt.Errorf("%w: format %s not allowed (only jpeg/png/gif)", ErrInvalidImage, format)
	}
}

// Process giữ nguyên ảnh nhỏ và gif; ảnh lớn hơn MaxDimension được fit lại rồi encode JPEG
func (p *ImageProcessor) Process(data []byte) (*ProcessedImage, error) {
	format, err := p.ValidateImage(data)
	if err != nil {
		return nil, err
	}
	if format == "gif" {
		return &ProcessedImage{Data: data, ContentType: "image/gif", Ext: ".gif"}, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot read image header: %w", err)
	}
	if cfg.Width <= p.MaxDimension && cfg.Height <= p.MaxDimension {
		if format == "png" {
			return &ProcessedImage{Data: data, ContentType: "image/png", Ext: ".png"}, nil
		}
		return &ProcessedImage{Data: data, ContentType: "image/jpeg", Ext: ".jpg"}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	resized := imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return &ProcessedImage{Data: b.Bytes(), ContentType: "image/jpeg", Ext: ".jpg"}, nil
}
