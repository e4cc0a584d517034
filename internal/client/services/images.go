package services

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/client/config"
	"github.com/dmitrijs2005/locagri/internal/logging"
)

// URLSource resolves a public URL for an object in a bucket.
type URLSource interface {
	GetPublicURL(ctx context.Context, bucket, path string) (string, error)
}

// ImageResolver maps an operator identifier to a displayable profile image
// URL: <namespace>/<id>.<ext>, then <namespace>/<default image>, then a
// fixed placeholder. It never fails and never returns "".
type ImageResolver struct {
	store        URLSource
	bucket       string
	namespace    string
	ext          string
	defaultImage string
	placeholder  string
	logger       logging.Logger
}

func NewImageResolver(store URLSource, cfg *config.Config, logger logging.Logger) *ImageResolver {
	return &ImageResolver{
		store:        store,
		bucket:       cfg.StorageBucket,
		namespace:    cfg.ImageNamespace,
		ext:          cfg.ImageExtension,
		defaultImage: cfg.DefaultImage,
		placeholder:  cfg.PlaceholderURL,
		logger:       logger.With("module", "images"),
	}
}

func (r *ImageResolver) ProfilePath(id string) string {
	return r.namespace + "/" + id + "." + r.ext
}

func (r *ImageResolver) DefaultPath() string {
	return r.namespace + "/" + r.defaultImage
}

func (r *ImageResolver) Resolve(ctx context.Context, id string) string {
	url, err := r.store.GetPublicURL(ctx, r.bucket, r.ProfilePath(id))
	if err == nil && url != "" {
		return url
	}
	r.logger.Info(ctx, "profile picture not found, using default", "id", id, "error", err)
	return r.DefaultURL(ctx)
}

// DefaultURL resolves the default image, falling back to the placeholder.
func (r *ImageResolver) DefaultURL(ctx context.Context) string {
	url, err := r.store.GetPublicURL(ctx, r.bucket, r.DefaultPath())
	if err == nil && url != "" {
		return url
	}
	r.logger.Warn(ctx, "default image unavailable, using placeholder", "error", err)
	return r.placeholder
}
