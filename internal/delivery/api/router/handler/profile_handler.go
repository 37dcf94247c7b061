package handler

import (
	"net/http"

	"portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the dashboard reads.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// ProfileResponse is the dashboard view of the caller's record
type ProfileResponse struct {
	Record   *RecordResponse `json:"record"`
	Complete bool            `json:"complete"`
}

// GetProfile returns the record of the token's identity under the token's role.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Invalid identity in token")
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "Invalid role in token")
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), role, identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		Record:   newRecordResponse(output.Record),
		Complete: output.Complete,
	})
}

// StudentCard renders the caller's student card as a PNG QR code.
func (h *ProfileHandler) StudentCard(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Invalid identity in token")
	}

	png, err := h.profileUC.StudentCard(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
