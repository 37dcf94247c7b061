package postgres

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "portal.db"), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestRoleRecordRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRecordRepository(openTestDB(t))

	record := entity.NewRoleRecord(entity.RoleStudent, "uid-1", "Alice Smith", "alice@example.com", "S-100")
	require.NoError(t, repo.Create(ctx, record))
	assert.Equal(t, int64(1), record.Version)
	assert.False(t, record.CreatedAt.IsZero())

	got, err := repo.Find(ctx, entity.RoleStudent, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", got.DisplayName)
	assert.Equal(t, "alice@example.com", got.ContactEmail)
	assert.Equal(t, "S-100", got.RoleSpecificID)
	assert.Equal(t, "S-100", got.Profile.StudentID)
	assert.Equal(t, int64(1), got.Version)
	assert.WithinDuration(t, record.CreatedAt, got.CreatedAt, time.Second)

	_, err = repo.Find(ctx, entity.RoleTeacher, "uid-1")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)

	err = repo.Create(ctx, entity.NewRoleRecord(entity.RoleStudent, "uid-1", "Other", "o@example.com", "S-2"))
	assert.ErrorIs(t, err, domainerrors.ErrRecordExists)
}

func TestRoleRecordRepository_MergeKeepsStoredFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRecordRepository(openTestDB(t))

	version, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{entity.FieldAddress: "1 Main St"}, repository.MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{
		entity.FieldPhone:     "555-0100",
		entity.FieldSubjects:  []string{"Art", "Music"},
		entity.FieldUpdatedAt: entity.ServerTime,
	}, repository.MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	got, err := repo.Find(ctx, entity.RoleStudent, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", got.Profile.Address)
	assert.Equal(t, "555-0100", got.Profile.Phone)
	assert.Equal(t, []string{"Art", "Music"}, got.Profile.Subjects)
	assert.False(t, got.UpdatedAt.IsZero())
	assert.Equal(t, int64(2), got.Version)
}

func TestRoleRecordRepository_MergeVersionCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRecordRepository(openTestDB(t))
	require.NoError(t, repo.Create(ctx, entity.NewRoleRecord(entity.RoleStudent, "uid-1", "A", "a@example.com", "S-1")))

	_, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{entity.FieldPhone: "1"},
		repository.MergeOptions{CheckVersion: true, ExpectedVersion: 5})
	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)

	version, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{entity.FieldPhone: "1"},
		repository.MergeOptions{CheckVersion: true, ExpectedVersion: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = repo.Merge(ctx, entity.RoleStudent, "uid-2", entity.Fields{entity.FieldPhone: "1"},
		repository.MergeOptions{CheckVersion: true, ExpectedVersion: 3})
	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	txManager := NewTransactionManager(db)
	boom := errors.New("invite write failed")

	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewRoleRecordRepository().Create(ctx, entity.NewRoleRecord(entity.RoleTeacher, "uid-1", "JOHN", "j@example.com", "T-1")); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewRoleRecordRepository(db).Find(ctx, entity.RoleTeacher, "uid-1")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestInviteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInviteRepository(openTestDB(t))
	issued := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

	_, err := repo.Find(ctx, "john@school.test")
	assert.ErrorIs(t, err, domainerrors.ErrInviteNotFound)
	assert.ErrorIs(t, repo.MarkConsumed(ctx, "john@school.test", issued), domainerrors.ErrInviteNotFound)

	invite := &entity.Invite{Email: "john@school.test", CodeHash: "old", IssuedAt: issued, ExpiresAt: issued.Add(time.Hour)}
	require.NoError(t, repo.Save(ctx, invite))
	invite.CodeHash = "new"
	require.NoError(t, repo.Save(ctx, invite))

	require.NoError(t, repo.MarkConsumed(ctx, "john@school.test", issued.Add(time.Minute)))

	got, err := repo.Find(ctx, "john@school.test")
	require.NoError(t, err)
	assert.Equal(t, "new", got.CodeHash)
	require.NotNil(t, got.ConsumedAt)
	assert.False(t, got.Usable(issued))
}
