package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"rental-management-backend/internal/config"
)

// ErrNotFound is returned when no object exists at a path
var ErrNotFound = errors.New("object not found")

// Storage persists uploaded files under slash-separated relative paths
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	URL(name string) string
}

// New builds the backend selected by cfg.StorageBackend
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "", "local":
		return NewLocal(cfg.MediaRoot, cfg.MediaURL)
	case "s3":
		return NewS3(ctx, S3Options{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Prefix:        cfg.S3Prefix,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}

// Clean normalises a relative object name and rejects escapes from the storage root
func Clean(name string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return cleaned, nil
}

func joinURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/" + name
}
