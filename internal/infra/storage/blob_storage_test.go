package storage

import (
	"context"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndRetrieve(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{Storage: &config.StorageConfig{PublicBaseURL: "https://cdn.example.com/assets/"}}
	s := NewAssetStorage(bucket, cfg)
	key := entity.StudentAssetKey("uid-1", "photo.png")

	err := s.Upload(ctx, key, entity.Asset{Filename: "photo.png", ContentType: "image/png", Data: []byte("png-bytes")})
	require.NoError(t, err)

	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	url, err := s.RetrievalURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/students/uid-1/photo.png", url)
}

func TestBlobStorage_SignedURLFallsBackWhenUnsupported(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{Storage: &config.StorageConfig{
		PublicBaseURL: "https://cdn.example.com",
		SignedURLTTL:  time.Minute,
	}}
	s := NewAssetStorage(bucket, cfg)

	url, err := s.RetrievalURL(context.Background(), "students/uid-1/a.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/students/uid-1/a.png", url)
}

func TestBlobStorage_NoRetrievalURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := NewAssetStorage(bucket, &config.Config{}).RetrievalURL(context.Background(), "k")

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}
