package errors

import (
	"net/http"
	"strings"

	"portal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithCause returns an error matching e that also carries cause in its chain.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{kind: e, cause: cause}
}

type causedError struct {
	kind  *BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.kind.message + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// Predefined error types
var (
	// Input errors, resolved locally without contacting any collaborator
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Some required information is missing or malformed",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too short",
		"",
	)

	// Verification errors
	ErrVerificationFailed = NewBaseError(
		http.StatusForbidden,
		"VERIFICATION_FAILED",
		"Invalid Teacher ID. Please contact admin.",
		"",
	)

	// Authentication-related errors
	ErrAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"Invalid credentials. Please try again.",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_EXISTS",
		"An account already exists for this email",
		"",
	)

	ErrNotRegisteredForRole = NewBaseError(
		http.StatusForbidden,
		"NOT_REGISTERED_FOR_ROLE",
		"You are not registered under this role",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired session",
		"",
	)

	// Collaborator failures
	ErrLookupFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"LOOKUP_FAILED",
		"Could not check your registration, please try again",
		"",
	)

	ErrStoreFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_FAILED",
		"Could not save your information, please try again",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Could not upload the attached file, please try again",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"PERSISTENCE_FAILED",
		"Submission failed, your answers are kept, please try again",
		"",
	)

	ErrVersionConflict = NewBaseError(
		http.StatusConflict,
		"VERSION_CONFLICT",
		"Your profile was changed elsewhere, reload and try again",
		"",
	)

	// Record-related errors
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"No record found",
		"",
	)

	ErrRecordExists = NewBaseError(
		http.StatusConflict,
		"RECORD_EXISTS",
		"A record already exists for this account",
		"",
	)

	// Draft-related errors
	ErrStepIncomplete = NewBaseError(
		http.StatusUnprocessableEntity,
		"STEP_INCOMPLETE",
		"Please fill in all required fields",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"This step cannot be changed that way",
		"",
	)

	ErrDraftSubmitted = NewBaseError(
		http.StatusConflict,
		"DRAFT_SUBMITTED",
		"This form has already been submitted",
		"",
	)

	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"Form session not found or expired",
		"",
	)

	// Invite-related errors
	ErrInviteNotFound = NewBaseError(
		http.StatusNotFound,
		"INVITE_NOT_FOUND",
		"No invite found for this email",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// StepIncompleteError reports which required fields block a step transition.
type StepIncompleteError struct {
	Step    int
	Missing []string
}

// NewStepIncompleteError creates a StepIncompleteError for the given step.
func NewStepIncompleteError(step int, missing []string) *StepIncompleteError {
	return &StepIncompleteError{Step: step, Missing: missing}
}

// Error implements the error interface
func (e *StepIncompleteError) Error() string {
	return "step incomplete: " + strings.Join(e.Missing, ", ")
}

// Is lets errors.Is match ErrStepIncomplete.
func (e *StepIncompleteError) Is(target error) bool {
	return target == ErrStepIncomplete
}

// HTTPCode returns the HTTP status code
func (e *StepIncompleteError) HTTPCode() int {
	return ErrStepIncomplete.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StepIncompleteError) ErrorCode() string {
	return ErrStepIncomplete.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StepIncompleteError) Message() string {
	return ErrStepIncomplete.Message()
}

// Details lists the missing fields
func (e *StepIncompleteError) Details() string {
	return strings.Join(e.Missing, ",")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Is lets errors.Is match ErrStoreFailed.
func (e *DatabaseExecuteError) Is(target error) bool {
	return target == ErrStoreFailed
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrStoreFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrStoreFailed.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
