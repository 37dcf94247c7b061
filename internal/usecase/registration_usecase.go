// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterStudentInput defines the data required to register a new student.
type RegisterStudentInput struct {
	Name            string
	Email           string
	StudentID       string
	Password        string
	ConfirmPassword string
}

// RegisterTeacherInput defines the data required to register a new teacher.
type RegisterTeacherInput struct {
	Name             string
	Email            string
	TeacherID        string
	Subject          string
	VerificationCode string
	Password         string
	ConfirmPassword  string
}

// --- Output DTOs ---

// RegisterOutput returns the role record written for the new account.
type RegisterOutput struct {
	Record *entity.RoleRecord
}

// RegistrationUsecase defines signup for both roles.
type RegistrationUsecase interface {
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*RegisterOutput, error)
	RegisterTeacher(ctx context.Context, input *RegisterTeacherInput) (*RegisterOutput, error)
}
