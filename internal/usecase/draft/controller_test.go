package draft

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testIdentity entity.Identity = "uid-1"

type controllerFixtures struct {
	records *mockRepo.MockRoleRecordRepository
	assets  *mockSvc.MockAssetStorage
}

func createTestController(t *testing.T, record *entity.RoleRecord, optimistic bool) (*Controller, controllerFixtures) {
	fx := controllerFixtures{
		records: mockRepo.NewMockRoleRecordRepository(t),
		assets:  mockSvc.NewMockAssetStorage(t),
	}

	ctrl := New(Options{
		Identity:              testIdentity,
		Record:                record,
		Records:               fx.records,
		Assets:                fx.assets,
		SubjectOptions:        []string{"Mathematics", "Science", "Art"},
		MaxAssetBytes:         1024,
		AllowedContentTypes:   []string{"image/png", "image/jpeg"},
		OptimisticConcurrency: optimistic,
	})

	return ctrl, fx
}

func fillRequired(t *testing.T, ctrl *Controller) {
	t.Helper()
	require.NoError(t, ctrl.SetField(entity.FieldFirstName, "Ada"))
	require.NoError(t, ctrl.SetField(entity.FieldLastName, "Lovelace"))
	require.NoError(t, ctrl.SetField(entity.FieldDateOfBirth, "2010-12-10"))
	require.NoError(t, ctrl.SetField(entity.FieldEmail, "ada@example.com"))
	require.NoError(t, ctrl.SetField(entity.FieldClassGrade, "Grade 8"))
}

func advanceToLastStep(t *testing.T, ctrl *Controller) {
	t.Helper()
	for ctrl.Step() < LastStep {
		require.NoError(t, ctrl.Next())
	}
}

func TestNew_EmptyWithoutRecord(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)

	assert.Equal(t, 1, ctrl.Step())
	assert.Equal(t, PhaseEditing, ctrl.Status().Phase)
	assert.Equal(t, entity.ProfileDraft{}, ctrl.Draft())
	assert.Zero(t, ctrl.Version())
}

func TestNew_PrepopulatesFromRecord(t *testing.T) {
	record := entity.DecodeRoleRecord(entity.RoleStudent, testIdentity, entity.Fields{
		entity.FieldName:      "Ada Lovelace",
		entity.FieldEmail:     "ada@example.com",
		entity.FieldStudentID: "S-1",
		entity.FieldAddress:   "12 St James's Square",
		entity.FieldSubjects:  []any{"Mathematics"},
		entity.FieldVersion:   int64(4),
	})

	ctrl, _ := createTestController(t, record, false)
	draft := ctrl.Draft()

	assert.Equal(t, "ada@example.com", draft.Email)
	assert.Equal(t, "S-1", draft.StudentID)
	assert.Equal(t, "12 St James's Square", draft.Address)
	assert.Equal(t, []string{"Mathematics"}, draft.Subjects)
	assert.Equal(t, int64(4), ctrl.Version())
}

func TestNext_RefusedWhenIncomplete(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)
	require.NoError(t, ctrl.SetField(entity.FieldFirstName, "Ada"))
	require.NoError(t, ctrl.SetField(entity.FieldPhone, "555-0100"))

	err := ctrl.Next()

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStepIncomplete)
	incomplete, ok := errors.Cause(err).(*domainerrors.StepIncompleteError)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"lastName", "dateOfBirth"}, incomplete.Missing)
	assert.Equal(t, 1, ctrl.Step())
	assert.Equal(t, "Ada", ctrl.Draft().FirstName)
	assert.Equal(t, "555-0100", ctrl.Draft().Phone)
}

func TestNext_RejectsMalformedValues(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)
	require.NoError(t, ctrl.SetField(entity.FieldFirstName, "Ada"))
	require.NoError(t, ctrl.SetField(entity.FieldLastName, "Lovelace"))
	require.NoError(t, ctrl.SetField(entity.FieldDateOfBirth, "10/12/2010"))

	err := ctrl.Next()
	assert.ErrorIs(t, err, domainerrors.ErrStepIncomplete)

	require.NoError(t, ctrl.SetField(entity.FieldDateOfBirth, "2010-12-10"))
	require.NoError(t, ctrl.Next())

	require.NoError(t, ctrl.SetField(entity.FieldEmail, "ada@example.com"))
	require.NoError(t, ctrl.SetField(entity.FieldParentEmail, "not-an-email"))
	err = ctrl.Next()
	require.Error(t, err)
	incomplete, ok := errors.Cause(err).(*domainerrors.StepIncompleteError)
	require.True(t, ok)
	assert.Equal(t, []string{"parentEmail"}, incomplete.Missing)
	assert.Equal(t, 2, ctrl.Step())
}

func TestNext_RefusedAtLastStep(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)
	fillRequired(t, ctrl)
	advanceToLastStep(t, ctrl)

	err := ctrl.Next()

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, LastStep, ctrl.Step())
}

func TestBack(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)

	assert.ErrorIs(t, ctrl.Back(), domainerrors.ErrInvalidTransition)
	assert.Equal(t, 1, ctrl.Step())

	fillRequired(t, ctrl)
	require.NoError(t, ctrl.Next())
	require.NoError(t, ctrl.Next())
	require.NoError(t, ctrl.Back())
	assert.Equal(t, 2, ctrl.Step())
}

func TestSetField_UnknownName(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)

	assert.ErrorIs(t, ctrl.SetField("favouriteColour", "blue"), domainerrors.ErrInvalidInput)
	assert.ErrorIs(t, ctrl.SetField(entity.FieldPhotoURL, "http://x"), domainerrors.ErrInvalidInput)
	assert.ErrorIs(t, ctrl.SetField(entity.FieldSubjects, "Art"), domainerrors.ErrInvalidInput)
}

func TestToggleSubject_RoundTrip(t *testing.T) {
	record := entity.DecodeRoleRecord(entity.RoleStudent, testIdentity, entity.Fields{
		entity.FieldSubjects: []string{"Science"},
	})
	ctrl, _ := createTestController(t, record, false)
	before := ctrl.Draft().Subjects

	require.NoError(t, ctrl.ToggleSubject("Art", true))
	assert.ElementsMatch(t, []string{"Science", "Art"}, ctrl.Draft().Subjects)

	require.NoError(t, ctrl.ToggleSubject("Art", false))
	assert.ElementsMatch(t, before, ctrl.Draft().Subjects)

	assert.ErrorIs(t, ctrl.ToggleSubject("Alchemy", true), domainerrors.ErrInvalidInput)
}

func TestSelectAsset_Checks(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)

	assert.ErrorIs(t, ctrl.SelectAsset(entity.Asset{Filename: "a.png", ContentType: "image/png"}), domainerrors.ErrInvalidInput)
	assert.ErrorIs(t, ctrl.SelectAsset(entity.Asset{Filename: "a.gif", ContentType: "image/gif", Data: []byte("x")}), domainerrors.ErrInvalidInput)
	assert.ErrorIs(t, ctrl.SelectAsset(entity.Asset{Filename: "a.png", ContentType: "image/png", Data: make([]byte, 2048)}), domainerrors.ErrInvalidInput)

	require.NoError(t, ctrl.SelectAsset(entity.Asset{Filename: "a.png", ContentType: "image/png", Data: []byte("one")}))
	require.NoError(t, ctrl.SelectAsset(entity.Asset{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("two")}))

	asset, ok := ctrl.Asset()
	require.True(t, ok)
	assert.Equal(t, "b.jpg", asset.Filename)
}

func TestSubmit_RefusedBeforeLastStep(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)
	fillRequired(t, ctrl)

	err := ctrl.Submit(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, PhaseEditing, ctrl.Status().Phase)
}

func TestSubmit_RevalidatesEarlierSteps(t *testing.T) {
	ctrl, _ := createTestController(t, nil, false)
	fillRequired(t, ctrl)
	advanceToLastStep(t, ctrl)
	require.NoError(t, ctrl.SetField(entity.FieldLastName, ""))

	err := ctrl.Submit(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrStepIncomplete)
	assert.Equal(t, LastStep, ctrl.Step())
}

func TestSubmit_MergesPresentFields(t *testing.T) {
	ctrl, fx := createTestController(t, nil, false)
	ctx := context.Background()
	fillRequired(t, ctrl)
	require.NoError(t, ctrl.SetField(entity.FieldPhone, "555-0100"))
	advanceToLastStep(t, ctrl)

	fx.records.EXPECT().
		Merge(ctx, entity.RoleStudent, testIdentity, mock.MatchedBy(func(fields entity.Fields) bool {
			_, hasAddress := fields[entity.FieldAddress]

			return fields[entity.FieldPhone] == "555-0100" &&
				fields[entity.FieldFullName] == "Ada Lovelace" &&
				entity.IsServerTime(fields[entity.FieldUpdatedAt]) &&
				!hasAddress
		}), repository.MergeOptions{}).
		Return(int64(1), nil)

	require.NoError(t, ctrl.Submit(ctx))

	assert.Equal(t, PhaseSubmitted, ctrl.Status().Phase)
	assert.Equal(t, int64(1), ctrl.Version())
	assert.Equal(t, "555-0100", ctrl.Written()[entity.FieldPhone])
	assert.ErrorIs(t, ctrl.SetField(entity.FieldBio, "hi"), domainerrors.ErrDraftSubmitted)
	assert.ErrorIs(t, ctrl.Back(), domainerrors.ErrDraftSubmitted)
	assert.ErrorIs(t, ctrl.Submit(ctx), domainerrors.ErrDraftSubmitted)
}

func TestSubmit_UploadsAssetFirst(t *testing.T) {
	ctrl, fx := createTestController(t, nil, false)
	ctx := context.Background()
	fillRequired(t, ctrl)
	asset := entity.Asset{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	require.NoError(t, ctrl.SelectAsset(asset))
	advanceToLastStep(t, ctrl)

	fx.assets.EXPECT().Upload(ctx, "students/uid-1/me.png", asset).Return(nil)
	fx.assets.EXPECT().RetrievalURL(ctx, "students/uid-1/me.png").Return("https://cdn.test/students/uid-1/me.png", nil)
	fx.records.EXPECT().
		Merge(ctx, entity.RoleStudent, testIdentity, mock.MatchedBy(func(fields entity.Fields) bool {
			return fields[entity.FieldPhotoURL] == "https://cdn.test/students/uid-1/me.png"
		}), mock.Anything).
		Return(int64(1), nil)

	require.NoError(t, ctrl.Submit(ctx))
	assert.Equal(t, "https://cdn.test/students/uid-1/me.png", ctrl.Draft().PhotoURL)
}

func TestSubmit_UploadFailureWritesNothing(t *testing.T) {
	ctrl, fx := createTestController(t, nil, false)
	ctx := context.Background()
	fillRequired(t, ctrl)
	asset := entity.Asset{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	require.NoError(t, ctrl.SelectAsset(asset))
	advanceToLastStep(t, ctrl)

	fx.assets.EXPECT().Upload(ctx, "students/uid-1/me.png", asset).
		Return(domainerrors.ErrUploadFailed.WithCause(errors.New("bucket unreachable"))).Once()

	err := ctrl.Submit(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Equal(t, PhaseFailed, ctrl.Status().Phase)
	assert.NotEmpty(t, ctrl.Status().Reason)
	assert.Equal(t, LastStep, ctrl.Step())
	assert.Equal(t, "Ada", ctrl.Draft().FirstName)
	_, stillSelected := ctrl.Asset()
	assert.True(t, stillSelected)
	fx.records.AssertNotCalled(t, "Merge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_StoreFailureIsRetryable(t *testing.T) {
	ctrl, fx := createTestController(t, nil, false)
	ctx := context.Background()
	fillRequired(t, ctrl)
	asset := entity.Asset{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	require.NoError(t, ctrl.SelectAsset(asset))
	advanceToLastStep(t, ctrl)

	fx.assets.EXPECT().Upload(ctx, "students/uid-1/me.png", asset).Return(nil).Once()
	fx.assets.EXPECT().RetrievalURL(ctx, "students/uid-1/me.png").Return("https://cdn.test/me.png", nil).Once()
	fx.records.EXPECT().Merge(ctx, entity.RoleStudent, testIdentity, mock.Anything, mock.Anything).
		Return(int64(0), domainerrors.ErrStoreFailed).Once()

	err := ctrl.Submit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailed)
	assert.Equal(t, PhaseFailed, ctrl.Status().Phase)

	fx.records.EXPECT().Merge(ctx, entity.RoleStudent, testIdentity, mock.Anything, mock.Anything).
		Return(int64(1), nil).Once()

	require.NoError(t, ctrl.Submit(ctx))
	assert.Equal(t, PhaseSubmitted, ctrl.Status().Phase)
}

func TestSubmit_OptimisticConcurrency(t *testing.T) {
	record := entity.DecodeRoleRecord(entity.RoleStudent, testIdentity, entity.Fields{
		entity.FieldVersion:   int64(7),
		entity.FieldUpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	ctrl, fx := createTestController(t, record, true)
	ctx := context.Background()
	fillRequired(t, ctrl)
	advanceToLastStep(t, ctrl)

	fx.records.EXPECT().
		Merge(ctx, entity.RoleStudent, testIdentity, mock.Anything, repository.MergeOptions{CheckVersion: true, ExpectedVersion: 7}).
		Return(int64(0), domainerrors.ErrVersionConflict)

	err := ctrl.Submit(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
	assert.Equal(t, PhaseFailed, ctrl.Status().Phase)
}

func TestSetField_ClearsFailure(t *testing.T) {
	ctrl, fx := createTestController(t, nil, false)
	ctx := context.Background()
	fillRequired(t, ctrl)
	advanceToLastStep(t, ctrl)
	fx.records.EXPECT().Merge(ctx, entity.RoleStudent, testIdentity, mock.Anything, mock.Anything).
		Return(int64(0), domainerrors.ErrStoreFailed)
	require.Error(t, ctrl.Submit(ctx))

	require.NoError(t, ctrl.SetField(entity.FieldBio, "Loves engines"))

	assert.Equal(t, PhaseEditing, ctrl.Status().Phase)
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, []string{"firstName", "lastName", "dateOfBirth"}, RequiredFields(1))
	assert.Equal(t, []string{"classGrade"}, RequiredFields(3))
	assert.Empty(t, RequiredFields(4))
}
