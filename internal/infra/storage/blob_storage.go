// Package storage keeps attached profile assets in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it on shutdown.
func NewBucket(ctx context.Context, params Params) (*blob.Bucket, error) {
	bucketURL := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})
	params.Logger.Info("Asset bucket opened", slog.String("url", bucketURL))

	return bucket, nil
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	signedURLTTL  time.Duration
}

// NewAssetStorage creates the bucket-backed AssetStorage.
func NewAssetStorage(bucket *blob.Bucket, cfg *config.Config) service.AssetStorage {
	s := &blobStorage{bucket: bucket}
	if cfg != nil && cfg.Storage != nil {
		s.publicBaseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
		s.signedURLTTL = cfg.Storage.SignedURLTTL
	}

	return s
}

func (s *blobStorage) Upload(ctx context.Context, key string, asset entity.Asset) error {
	opts := &blob.WriterOptions{ContentType: asset.ContentType}
	if err := s.bucket.WriteAll(ctx, key, asset.Data, opts); err != nil {
		return domainerrors.ErrUploadFailed.WithCause(err)
	}

	return nil
}

// RetrievalURL returns a signed URL when signing is enabled and supported by the
// bucket, otherwise the public base URL joined with key.
func (s *blobStorage) RetrievalURL(ctx context.Context, key string) (string, error) {
	if s.signedURLTTL > 0 {
		url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: s.signedURLTTL})
		if err == nil {
			return url, nil
		}
		if gcerrors.Code(err) != gcerrors.Unimplemented {
			return "", domainerrors.ErrUploadFailed.WithCause(err)
		}
	}

	if s.publicBaseURL == "" {
		return "", domainerrors.ErrUploadFailed.WithDetails("no retrieval URL configured for assets")
	}

	return s.publicBaseURL + "/" + key, nil
}
