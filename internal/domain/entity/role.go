// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleStudent indicates a student role.
	RoleStudent Role = "student"
	// RoleTeacher indicates a teacher role.
	RoleTeacher Role = "teacher"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher:
		return true
	default:
		return false
	}
}

// Collection returns the name of the record collection holding this role's records.
func (r Role) Collection() string {
	switch r {
	case RoleStudent:
		return "students"
	case RoleTeacher:
		return "teachers"
	default:
		return ""
	}
}

// IDField returns the stored field name of the role-specific identifier.
func (r Role) IDField() string {
	switch r {
	case RoleStudent:
		return FieldStudentID
	case RoleTeacher:
		return FieldTeacherID
	default:
		return ""
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// AllRoles lists every supported role.
var AllRoles = Roles{RoleStudent, RoleTeacher}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
