package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"profile-backend/internal/shared/metrics"
	"profile-backend/internal/shared/storage/object"
	"profile-backend/internal/shared/util"
)

// Service contains business logic for image uploads.
type Service struct {
	Store object.ObjectStore
}

// Save streams an upload into the object store under a fresh key and returns
// the public URL for the stored object.
func (s *Service) Save(ctx context.Context, fileName, contentType string, r io.Reader, size int64) (string, error) {
	if err := s.Store.EnsureBucket(ctx); err != nil {
		return "", fmt.Errorf("ensure bucket: %w", err)
	}

	key := uuid.NewString() + util.ExtensionOrDefault(fileName, ".jpg")
	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	if err := s.Store.Put(ctx, key, contentType, r, size); err != nil {
		return "", fmt.Errorf("store object %s: %w", key, err)
	}

	metrics.IncUpload()
	metrics.AddUploadBytes(size)
	return s.Store.PublicURL(key), nil
}

// Open retrieves a stored object by key.
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Store.Open(ctx, key)
}
