package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/minio"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	log "log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbnailWidth = 320

type MediaService interface {
	// UploadImage stores a cover image and a downscaled thumbnail,
	// returning their public URLs.
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

func (s *MediaServiceImpl) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.ErrorContext(ctx, "open upload failed", "name", fileHeader.Filename, "err", err)
		return nil, UnExpectedError
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		log.ErrorContext(ctx, "read upload failed", "name", fileHeader.Filename, "err", err)
		return nil, UnExpectedError
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrFileNotSupported
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	baseName := uuid.NewString()

	objectName := fmt.Sprintf("posts/%s%s", baseName, ext)
	key, err := minio.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		log.ErrorContext(ctx, "store upload failed", "object", objectName, "err", err)
		return nil, UnExpectedError
	}

	// Thumbnails keep the aspect ratio and are always jpeg.
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		log.ErrorContext(ctx, "encode thumbnail failed", "object", objectName, "err", err)
		return nil, UnExpectedError
	}

	thumbName := fmt.Sprintf("posts/thumbs/%s.jpg", baseName)
	thumbKey, err := minio.UploadFile(ctx, thumbName, &thumbBuf, int64(thumbBuf.Len()), "image/jpeg")
	if err != nil {
		log.ErrorContext(ctx, "store thumbnail failed", "object", thumbName, "err", err)
		// The original made it up; serve it without a thumbnail.
		return &dto.UploadResponse{Success: true, URL: minio.GetPublicURL(key)}, nil
	}

	return &dto.UploadResponse{
		Success:      true,
		URL:          minio.GetPublicURL(key),
		ThumbnailURL: minio.GetPublicURL(thumbKey),
	}, nil
}
