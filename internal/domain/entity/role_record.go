package entity

import (
	"strings"
	"time"
)

// RoleRecord is the stored entry that admits an identity into one role.
// There is at most one per (role, identity).
type RoleRecord struct {
	Identity       Identity     // Key of the record inside its role collection.
	Role           Role         // Collection the record belongs to.
	DisplayName    string       // Name given at signup.
	ContactEmail   string       // Email given at signup or updated by the profile form.
	RoleSpecificID string       // studentId or teacherId.
	Subject        string       // Teacher subject, optional.
	Profile        ProfileDraft // Profile fields written by the student form.
	CreatedAt      time.Time    // Timestamp of the signup commit.
	UpdatedAt      time.Time    // Timestamp of the last merge-commit.
	Version        int64        // Incremented by every write, used for compare-and-swap.
}

// NewRoleRecord builds the record written at signup.
func NewRoleRecord(role Role, identity Identity, displayName, email, roleSpecificID string) *RoleRecord {
	return &RoleRecord{
		Identity:       identity,
		Role:           role,
		DisplayName:    displayName,
		ContactEmail:   email,
		RoleSpecificID: roleSpecificID,
	}
}

// DecodeRoleRecord reads an untyped stored document. Absent fields take
// their zero value; a missing role tag falls back to the collection's role.
func DecodeRoleRecord(role Role, identity Identity, fields Fields) *RoleRecord {
	if fields == nil {
		fields = Fields{}
	}

	record := &RoleRecord{
		Identity:       identity,
		Role:           role,
		DisplayName:    fields.String(FieldName),
		ContactEmail:   fields.String(FieldEmail),
		RoleSpecificID: fields.String(role.IDField()),
		Subject:        fields.String(FieldSubject),
		CreatedAt:      fields.Time(FieldCreatedAt),
		UpdatedAt:      fields.Time(FieldUpdatedAt),
		Version:        fields.Int64(FieldVersion),
	}
	record.Profile.Load(fields)
	if record.Profile.StudentID == "" && role == RoleStudent {
		record.Profile.StudentID = record.RoleSpecificID
	}

	return record
}

// Fields returns the document written when the record is first created.
func (r *RoleRecord) Fields() Fields {
	fields := Fields{
		FieldName:      r.DisplayName,
		FieldEmail:     r.ContactEmail,
		FieldRole:      r.Role.String(),
		FieldCreatedAt: r.CreatedAt,
	}
	if idField := r.Role.IDField(); idField != "" {
		fields[idField] = r.RoleSpecificID
	}
	if r.Role == RoleTeacher && r.Subject != "" {
		fields[FieldSubject] = r.Subject
	}

	return fields
}

// IsComplete reports whether the record carries a name, an email and a role-specific id.
func (r *RoleRecord) IsComplete() bool {
	return strings.TrimSpace(r.DisplayName) != "" &&
		strings.TrimSpace(r.ContactEmail) != "" &&
		strings.TrimSpace(r.RoleSpecificID) != ""
}
