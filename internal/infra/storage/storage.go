package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/valet-reports/internal/config"
)

var ErrInvalidKey = errors.New("invalid object key")

// Storage keeps uploaded screenshot objects under slash separated keys.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// FileServer is implemented by stores whose objects live on local disk.
type FileServer interface {
	Path(key string) (string, error)
}

// Presigner is implemented by stores that hand out temporary download URLs.
type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// NewKey returns a fresh key for a screenshot uploaded at t.
func NewKey(t time.Time, ext string) string {
	return path.Join("screenshots", t.UTC().Format("2006/01"), uuid.NewString()+ext)
}

// CleanKey rejects keys that are empty, absolute or escape the store root.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, `\`) {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageLocal:
		return NewLocal(cfg.UploadDir)
	case config.StorageS3:
		return NewS3(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
