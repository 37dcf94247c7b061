package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoleRecord_FillsDefaults(t *testing.T) {
	record := DecodeRoleRecord(RoleTeacher, "uid-1", nil)

	require.NotNil(t, record)
	assert.Equal(t, Identity("uid-1"), record.Identity)
	assert.Equal(t, RoleTeacher, record.Role)
	assert.Empty(t, record.DisplayName)
	assert.True(t, record.CreatedAt.IsZero())
	assert.Zero(t, record.Version)
	assert.False(t, record.IsComplete())
}

func TestDecodeRoleRecord_ReadsStoreShapes(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	fields := Fields{
		FieldName:      "Alice Smith",
		FieldEmail:     "alice@example.com",
		FieldStudentID: "S-42",
		FieldCreatedAt: created.Format(time.RFC3339Nano),
		FieldVersion:   float64(3),
		FieldSubjects:  []any{"Art", "Music"},
		FieldAddress:   "1 Main St",
	}

	record := DecodeRoleRecord(RoleStudent, "uid-2", fields)

	assert.Equal(t, "Alice Smith", record.DisplayName)
	assert.Equal(t, "S-42", record.RoleSpecificID)
	assert.Equal(t, "S-42", record.Profile.StudentID)
	assert.True(t, created.Equal(record.CreatedAt))
	assert.Equal(t, int64(3), record.Version)
	assert.Equal(t, []string{"Art", "Music"}, record.Profile.Subjects)
	assert.Equal(t, "1 Main St", record.Profile.Address)
	assert.Equal(t, "alice@example.com", record.Profile.Email)
	assert.True(t, record.IsComplete())
}

func TestRoleRecord_Fields(t *testing.T) {
	record := NewRoleRecord(RoleTeacher, "uid-3", "John", "john@example.com", "T-1")
	record.Subject = "History"

	fields := record.Fields()

	assert.Equal(t, "John", fields[FieldName])
	assert.Equal(t, "teacher", fields[FieldRole])
	assert.Equal(t, "T-1", fields[FieldTeacherID])
	assert.Equal(t, "History", fields[FieldSubject])
	assert.NotContains(t, fields, FieldStudentID)
}

func TestRole_Collection(t *testing.T) {
	assert.Equal(t, "students", RoleStudent.Collection())
	assert.Equal(t, "teachers", RoleTeacher.Collection())
	assert.Empty(t, Role("admin").Collection())
	assert.False(t, Role("admin").IsValid())
}

func TestFields_MergeInto(t *testing.T) {
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	stored := Fields{FieldAddress: "1 Main St", FieldPhone: "111"}

	merged := Fields{FieldPhone: "222", FieldUpdatedAt: ServerTime}.MergeInto(stored, now)

	assert.Equal(t, "1 Main St", merged.String(FieldAddress))
	assert.Equal(t, "222", merged.String(FieldPhone))
	assert.Equal(t, now, merged.Time(FieldUpdatedAt))
	assert.Equal(t, "111", stored.String(FieldPhone), "stored fields are not modified")
}
