package entity

import (
	"strconv"
	"time"
)

// Fields is a partial record keyed by stored field name. It is the unit of a merge-write.
type Fields map[string]any

// Stored field names shared by both role collections.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldRole      = "role"
	FieldStudentID = "studentId"
	FieldTeacherID = "teacherId"
	FieldSubject   = "subject"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldVersion   = "version"
)

// Stored field names written by the student profile form.
const (
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldFullName          = "fullName"
	FieldDateOfBirth       = "dateOfBirth"
	FieldGender            = "gender"
	FieldPhone             = "phone"
	FieldAddress           = "address"
	FieldCity              = "city"
	FieldState             = "state"
	FieldZipCode           = "zipCode"
	FieldParentName        = "parentName"
	FieldParentEmail       = "parentEmail"
	FieldParentPhone       = "parentPhone"
	FieldEmergencyContact  = "emergencyContact"
	FieldEmergencyPhone    = "emergencyPhone"
	FieldClassGrade        = "classGrade"
	FieldSubjects          = "subjects"
	FieldPreviousSchool    = "previousSchool"
	FieldInterests         = "interests"
	FieldMedicalConditions = "medicalConditions"
	FieldAllergies         = "allergies"
	FieldBio               = "bio"
	FieldPhotoURL          = "photoUrl"
)

type serverTime struct{}

// ServerTime is a placeholder the record store replaces with its own write time.
var ServerTime any = serverTime{}

// IsServerTime reports whether v is the ServerTime placeholder.
func IsServerTime(v any) bool {
	_, ok := v.(serverTime)

	return ok
}

// Clone returns a shallow copy of the fields.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

// MergeInto copies f over stored and returns the result. Keys of stored that f
// does not name are kept. ServerTime placeholders are replaced by now.
func (f Fields) MergeInto(stored Fields, now time.Time) Fields {
	out := stored.Clone()
	for k, v := range f {
		if IsServerTime(v) {
			v = now
		}
		out[k] = v
	}

	return out
}

// String returns the value of key as a string, or "" when absent or not textual.
func (f Fields) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Strings returns the value of key as a string slice. Stores hand back
// []string, []any (JSON, Firestore) or nothing.
func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// Time returns the value of key as a time, or the zero time.
func (f Fields) Time(key string) time.Time {
	switch v := f[key].(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Int64 returns the value of key as an int64, or 0.
func (f Fields) Int64(key string) int64 {
	switch v := f[key].(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)

		return n
	default:
		return 0
	}
}
