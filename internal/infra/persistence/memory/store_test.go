package memory

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(func() time.Time { return testNow })
}

func TestRoleRecordRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRecordRepository(newTestStore())

	record := entity.NewRoleRecord(entity.RoleTeacher, "uid-1", "JOHN", "john@school.test", "T-7")
	record.Subject = "History"
	require.NoError(t, repo.Create(ctx, record))
	assert.Equal(t, int64(1), record.Version)

	got, err := repo.Find(ctx, entity.RoleTeacher, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "JOHN", got.DisplayName)
	assert.Equal(t, "T-7", got.RoleSpecificID)
	assert.Equal(t, "History", got.Subject)
	assert.Equal(t, testNow, got.CreatedAt)

	_, err = repo.Find(ctx, entity.RoleStudent, "uid-1")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)

	err = repo.Create(ctx, record)
	assert.ErrorIs(t, err, domainerrors.ErrRecordExists)
}

func TestRoleRecordRepository_MergeKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRecordRepository(newTestStore())

	_, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{entity.FieldAddress: "1 Main St"}, repository.MergeOptions{})
	require.NoError(t, err)

	version, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{
		entity.FieldPhone:     "555",
		entity.FieldUpdatedAt: entity.ServerTime,
	}, repository.MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	got, err := repo.Find(ctx, entity.RoleStudent, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", got.Profile.Address)
	assert.Equal(t, "555", got.Profile.Phone)
	assert.Equal(t, testNow, got.UpdatedAt)
	assert.Equal(t, int64(2), got.Version)
}

func TestRoleRecordRepository_MergeVersionCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRecordRepository(newTestStore())
	require.NoError(t, repo.Create(ctx, entity.NewRoleRecord(entity.RoleStudent, "uid-1", "A", "a@b.c", "S-1")))

	_, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{entity.FieldPhone: "1"},
		repository.MergeOptions{CheckVersion: true, ExpectedVersion: 0})
	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)

	version, err := repo.Merge(ctx, entity.RoleStudent, "uid-1", entity.Fields{entity.FieldPhone: "1"},
		repository.MergeOptions{CheckVersion: true, ExpectedVersion: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestInviteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInviteRepository(newTestStore())

	_, err := repo.Find(ctx, "john@school.test")
	assert.ErrorIs(t, err, domainerrors.ErrInviteNotFound)

	require.NoError(t, repo.Save(ctx, &entity.Invite{
		Email:     "john@school.test",
		CodeHash:  "h",
		IssuedAt:  testNow,
		ExpiresAt: testNow.Add(time.Hour),
	}))
	require.NoError(t, repo.MarkConsumed(ctx, "john@school.test", testNow))

	got, err := repo.Find(ctx, "john@school.test")
	require.NoError(t, err)
	require.NotNil(t, got.ConsumedAt)
	assert.False(t, got.Usable(testNow))
}
