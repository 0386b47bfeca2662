package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"fithub/backend/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrUploadURLError = errors.New("failed to generate upload URL")
	ErrObjectKeyEmpty = errors.New("object key is required")
)

// UploadURLResponse carries a presigned PUT URL and the key the client must
// upload to.
type UploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
}

// --- Service Interface ---
type MediaService interface {
	RequestUploadURL(ctx context.Context, fileName, contentType string) (*UploadURLResponse, error)
	DownloadURL(ctx context.Context, objectKey string) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// --- Service Implementation ---

type mediaService struct {
	fileStorage storage.FileStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(fileStorage storage.FileStorage) MediaService {
	return &mediaService{fileStorage: fileStorage}
}

// RequestUploadURL generates a unique object key and a presigned PUT URL
// for it. The client uploads directly to the storage provider.
func (s *mediaService) RequestUploadURL(ctx context.Context, fileName, contentType string) (*UploadURLResponse, error) {
	if contentType == "" {
		return nil, ErrMissingFields
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	} else if ext := path.Ext(fileName); ext != "" {
		fileExtension = strings.TrimPrefix(ext, ".")
	}

	objectKey := path.Join("media", fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// DownloadURL generates a presigned GET URL for an existing object.
func (s *mediaService) DownloadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", ErrObjectKeyEmpty
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}

// DeleteObject removes an object from storage.
func (s *mediaService) DeleteObject(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return ErrObjectKeyEmpty
	}
	return s.fileStorage.DeleteObject(ctx, objectKey)
}
