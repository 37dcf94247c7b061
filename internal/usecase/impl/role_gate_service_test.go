package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockRepo "portal/internal/mocks/repository"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleGateFixtures struct {
	gate    usecase.RoleGateUsecase
	records *mockRepo.MockRoleRecordRepository
}

func createTestRoleGate(t *testing.T) roleGateFixtures {
	records := mockRepo.NewMockRoleRecordRepository(t)

	return roleGateFixtures{
		gate:    NewRoleGateService(records, newDiscardLogger()),
		records: records,
	}
}

func TestRoleGate_Admit_Allowed(t *testing.T) {
	fx := createTestRoleGate(t)
	ctx := context.Background()
	record := entity.NewRoleRecord(entity.RoleTeacher, "uid-1", "John", "john@school.test", "T-9")

	fx.records.EXPECT().Find(ctx, entity.RoleTeacher, entity.Identity("uid-1")).Return(record, nil).Once()

	admission, err := fx.gate.Admit(ctx, "uid-1", entity.RoleTeacher)

	require.NoError(t, err)
	assert.True(t, admission.Allowed())
	assert.Equal(t, entity.DecisionAllowed, admission.Decision)
	assert.Same(t, record, admission.Record)
}

func TestRoleGate_Admit_DeniedForOtherRoleOnly(t *testing.T) {
	fx := createTestRoleGate(t)
	ctx := context.Background()

	// The identity holds only a student record.
	fx.records.EXPECT().Find(ctx, entity.RoleTeacher, entity.Identity("uid-1")).
		Return(nil, domainerrors.ErrRecordNotFound).Once()

	admission, err := fx.gate.Admit(ctx, "uid-1", entity.RoleTeacher)

	require.NoError(t, err)
	assert.False(t, admission.Allowed())
	assert.Equal(t, entity.DecisionDenied, admission.Decision)
	assert.Nil(t, admission.Record)
}

func TestRoleGate_Admit_LookupFailedIsNeverAllowed(t *testing.T) {
	fx := createTestRoleGate(t)
	ctx := context.Background()
	cause := errors.New("deadline exceeded")

	fx.records.EXPECT().Find(ctx, entity.RoleStudent, entity.Identity("uid-1")).Return(nil, cause).Once()

	admission, err := fx.gate.Admit(ctx, "uid-1", entity.RoleStudent)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLookupFailed)
	assert.ErrorIs(t, err, cause)
	require.NotNil(t, admission)
	assert.Equal(t, entity.DecisionLookupFailed, admission.Decision)
	assert.False(t, admission.Allowed())
}

func TestRoleGate_Admit_InvalidInputSkipsStore(t *testing.T) {
	fx := createTestRoleGate(t)
	ctx := context.Background()

	_, err := fx.gate.Admit(ctx, "", entity.RoleStudent)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.gate.Admit(ctx, "uid-1", entity.Role("admin"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
