package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"resto/internal/models/response_models"
	"resto/pkg/utils"
)

// MaxFileSize is the upload ceiling in bytes (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

var allowedMimeTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Ideal image dimensions, surfaced through /admin/storage/info so the
// admin dashboard can hint editors.
var idealImageSizes = map[string]response_models.ImageSize{
	"hero":      {Width: 1200, Height: 800, Description: "1200x800 (3:2 ratio)"},
	"gallery":   {Width: 800, Height: 600, Description: "800x600 (4:3 ratio)"},
	"thumbnail": {Width: 400, Height: 300, Description: "400x300 (4:3 ratio)"},
}

func AllowedMimeTypes() []string {
	return allowedMimeTypes
}

func mimeAllowed(mimeType string) bool {
	for _, allowed := range allowedMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

type UploadServiceInterface interface {
	// Upload validates MIME type and size before any storage call, then
	// stores the bytes under folder/<uuid>.<ext> and returns the public URL.
	Upload(ctx context.Context, data []byte, mimeType, folder string) (response_models.UploadResult, error)

	// Delete takes a previously issued public URL. URLs outside this
	// deployment's bucket are silently ignored; deletion is best-effort.
	Delete(ctx context.Context, url string) error

	Info() response_models.StorageInfo
}

type UploadService struct {
	storage StorageClientInterface
}

func NewUploadService(storage StorageClientInterface) *UploadService {
	return &UploadService{storage: storage}
}

func (s *UploadService) Upload(ctx context.Context, data []byte, mimeType, folder string) (response_models.UploadResult, error) {
	if !mimeAllowed(mimeType) {
		return response_models.UploadResult{}, utils.ErrInvalidFileType
	}
	if len(data) == 0 {
		return response_models.UploadResult{}, utils.ErrEmptyUploadBody
	}
	if len(data) > MaxFileSize {
		return response_models.UploadResult{}, utils.ErrFileTooLarge
	}

	if folder == "" {
		folder = "general"
	}

	if err := s.storage.EnsureBucket(ctx); err != nil {
		log.Printf("Error ensuring bucket: %v", err)
		return response_models.UploadResult{}, utils.ErrStorageUnavailable
	}

	ext := strings.TrimPrefix(mimeType, "image/")
	objectPath := folder + "/" + uuid.New().String() + "." + ext

	url, err := s.storage.Upload(ctx, data, mimeType, objectPath)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return response_models.UploadResult{}, utils.ErrStorageUnavailable
	}
	return response_models.UploadResult{URL: url}, nil
}

func (s *UploadService) Delete(ctx context.Context, url string) error {
	prefix := s.storage.PublicURLPrefix()
	if !strings.HasPrefix(url, prefix) {
		// Not one of ours; record-delete flows pass through foreign URLs.
		return nil
	}

	objectPath := strings.TrimPrefix(url, prefix)
	if objectPath == "" {
		return nil
	}

	// Best-effort: the asset may already be gone, and record-delete flows
	// must not fail because of it.
	if err := s.storage.DeleteObject(ctx, objectPath); err != nil {
		log.Printf("Error deleting image: %v", err)
	}
	return nil
}

func (s *UploadService) Info() response_models.StorageInfo {
	return response_models.StorageInfo{
		Bucket:        s.storage.Bucket(),
		MaxFileSize:   MaxFileSize,
		MaxFileSizeMB: MaxFileSize / 1024 / 1024,
		AllowedTypes:  allowedMimeTypes,
		IdealSizes:    idealImageSizes,
	}
}
