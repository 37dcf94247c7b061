package service

import (
	"context"

	"portal/internal/domain/entity"
)

// AssetStorage is the external blob store for attached profile assets.
type AssetStorage interface {
	// Upload writes the asset under key. Failures match ErrUploadFailed.
	Upload(ctx context.Context, key string, asset entity.Asset) error

	// RetrievalURL returns the reference under which the uploaded asset can be fetched.
	RetrievalURL(ctx context.Context, key string) (string, error)
}
