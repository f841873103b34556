package minio

import (
	"Inkwell/internal/api/config"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// UploadFile stores an object and returns its key.
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// GetPublicURL maps an object key to its public URL. Keys that are
// already absolute URLs pass through untouched.
func GetPublicURL(objectName string) string {
	if objectName == "" || strings.HasPrefix(objectName, "http") {
		return objectName
	}
	base := strings.TrimSuffix(config.Cfg.MinIO.PublicBaseURL, "/")
	return base + "/" + Bucket + "/" + objectName
}
