package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	records := mockRepo.NewMockRoleRecordRepository(t)
	srv := NewProfileService(records, mockSvc.NewMockQRCodeService(t), newDiscardLogger())
	ctx := context.Background()

	record := entity.NewRoleRecord(entity.RoleTeacher, "uid-1", "JOHN", "john@school.test", "T-7")
	records.EXPECT().Find(ctx, entity.RoleTeacher, entity.Identity("uid-1")).Return(record, nil)

	out, err := srv.GetProfile(ctx, entity.RoleTeacher, "uid-1")

	require.NoError(t, err)
	assert.Same(t, record, out.Record)
	assert.Equal(t, record.IsComplete(), out.Complete)
}

func TestProfileService_GetProfile_Errors(t *testing.T) {
	records := mockRepo.NewMockRoleRecordRepository(t)
	srv := NewProfileService(records, mockSvc.NewMockQRCodeService(t), newDiscardLogger())
	ctx := context.Background()

	records.EXPECT().Find(ctx, entity.RoleStudent, entity.Identity("missing")).Return(nil, domainerrors.ErrRecordNotFound)
	records.EXPECT().Find(ctx, entity.RoleStudent, entity.Identity("flaky")).Return(nil, errors.New("unavailable"))

	_, err := srv.GetProfile(ctx, entity.RoleStudent, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)

	_, err = srv.GetProfile(ctx, entity.RoleStudent, "flaky")
	assert.ErrorIs(t, err, domainerrors.ErrLookupFailed)

	_, err = srv.GetProfile(ctx, entity.RoleStudent, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestProfileService_StudentCard(t *testing.T) {
	records := mockRepo.NewMockRoleRecordRepository(t)
	qrCodes := mockSvc.NewMockQRCodeService(t)
	srv := NewProfileService(records, qrCodes, newDiscardLogger())
	ctx := context.Background()

	record := entity.NewRoleRecord(entity.RoleStudent, "uid-1", "Alice", "alice@example.com", "S-1")
	records.EXPECT().Find(ctx, entity.RoleStudent, entity.Identity("uid-1")).Return(record, nil)
	qrCodes.EXPECT().GenerateStudentCard(record).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := srv.StudentCard(ctx, "uid-1")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
