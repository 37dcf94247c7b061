package persistence

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, store *config.StoreConfig) Params {
	t.Helper()

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Ctx:       context.Background(),
		Config:    &config.Config{Store: store},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_Memory(t *testing.T) {
	stores, err := New(newParams(t, nil))
	require.NoError(t, err)

	record := entity.NewRoleRecord(entity.RoleStudent, "uid-1", "Alice", "alice@example.com", "S-1")
	require.NoError(t, stores.Records.Create(context.Background(), record))

	found, err := stores.Records.Find(context.Background(), entity.RoleStudent, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.DisplayName)
}

func TestNew_SQLite(t *testing.T) {
	params := newParams(t, &config.StoreConfig{
		Provider:   config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "portal.db"),
	})

	stores, err := New(params)
	require.NoError(t, err)
	assert.NotNil(t, stores.Records)
	assert.NotNil(t, stores.Invites)
	assert.NotNil(t, stores.TxManager)

	params.Lifecycle.(*fxtest.Lifecycle).RequireStart().RequireStop()
}

func TestNew_Errors(t *testing.T) {
	_, err := New(newParams(t, &config.StoreConfig{Provider: config.StoreFirestore}))
	assert.ErrorContains(t, err, "Firebase app")

	_, err = New(newParams(t, &config.StoreConfig{Provider: "redis"}))
	assert.ErrorContains(t, err, "unknown store provider")
}
