package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/server/config"
)

// ObjectStore is the part of storage.S3Store the service needs.
type ObjectStore interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

type StorageService struct {
	store         ObjectStore
	bucket        string
	publicBaseURL string
	presignExpiry time.Duration
}

func NewStorageService(store ObjectStore, cfg *config.Config) *StorageService {
	return &StorageService{
		store:         store,
		bucket:        cfg.S3Bucket,
		publicBaseURL: cfg.PublicBaseURL(),
		presignExpiry: cfg.S3PresignExpiry,
	}
}

// GetPublicURL returns a URL for bucket/path. Unknown buckets and missing
// objects yield common.ErrorNotFound.
func (s *StorageService) GetPublicURL(ctx context.Context, bucket, path string) (string, error) {
	path = strings.TrimPrefix(path, "/")
	if path == "" || strings.Contains(path, "..") {
		return "", fmt.Errorf("%w: bad object path %q", common.ErrorInvalidArgument, path)
	}
	if bucket != s.bucket {
		return "", fmt.Errorf("%w: bucket %q", common.ErrorNotFound, bucket)
	}

	ok, err := s.store.Exists(ctx, bucket, path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: object %s/%s", common.ErrorNotFound, bucket, path)
	}

	if s.presignExpiry > 0 {
		u, err := s.store.PresignGet(ctx, bucket, path, s.presignExpiry)
		if err != nil {
			return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
		}
		return u, nil
	}

	return publicURL(s.publicBaseURL, bucket, path), nil
}

func publicURL(base, bucket, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
