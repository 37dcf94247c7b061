// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/api/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/verification"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	SessionUC      usecase.SessionUsecase
	Logger         *slog.Logger
}

// AuthHandler serves signup, login and the verification code helper.
type AuthHandler struct {
	registrationUC usecase.RegistrationUsecase
	sessionUC      usecase.SessionUsecase
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		registrationUC: params.RegistrationUC,
		sessionUC:      params.SessionUC,
		logger:         params.Logger,
	}
}

// RegisterStudentRequest represents the student signup form
type RegisterStudentRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	StudentID       string `json:"studentId"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterTeacherRequest represents the teacher signup form
type RegisterTeacherRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	TeacherID        string `json:"teacherId"`
	Subject          string `json:"subject"`
	VerificationCode string `json:"verificationCode"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmPassword"`
}

// LoginRequest represents the email/password login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExchangeRequest carries an ID token from a client-side sign-in
type ExchangeRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// RegisterStudent handles student signup.
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req RegisterStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	output, err := h.registrationUC.RegisterStudent(c.Request().Context(), &usecase.RegisterStudentInput{
		Name:            req.Name,
		Email:           req.Email,
		StudentID:       req.StudentID,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRecordResponse(output.Record))
}

// RegisterTeacher handles teacher signup.
func (h *AuthHandler) RegisterTeacher(c echo.Context) error {
	var req RegisterTeacherRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	output, err := h.registrationUC.RegisterTeacher(c.Request().Context(), &usecase.RegisterTeacherInput{
		Name:             req.Name,
		Email:            req.Email,
		TeacherID:        req.TeacherID,
		Subject:          req.Subject,
		VerificationCode: req.VerificationCode,
		Password:         req.Password,
		ConfirmPassword:  req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRecordResponse(output.Record))
}

// Login signs in with email and password and admits the identity to :role.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Role:     entity.Role(c.Param("role")),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(output))
}

// Exchange admits the holder of a provider ID token to :role.
func (h *AuthHandler) Exchange(c echo.Context) error {
	var req ExchangeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid exchange input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.sessionUC.Exchange(c.Request().Context(), &usecase.ExchangeInput{
		Role:    entity.Role(c.Param("role")),
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(output))
}

// VerificationCode returns the code derived from ?name=. The code is not a secret.
func (h *AuthHandler) VerificationCode(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return domainerrors.ErrInvalidInput.WithDetails("name is required")
	}

	code, err := verification.DeriveCodeString(name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"name": name, "code": code})
}
