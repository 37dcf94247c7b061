package handler

import (
	"io"
	"net/http"

	"portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const assetFormField = "file"

// DraftHandler exposes the student profile form as draft sessions.
type DraftHandler struct {
	draftUC usecase.DraftUsecase
}

// NewDraftHandler is the constructor for DraftHandler
func NewDraftHandler(draftUC usecase.DraftUsecase) *DraftHandler {
	return &DraftHandler{draftUC: draftUC}
}

// SetFieldRequest sets one text field of the draft
type SetFieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// ToggleSubjectRequest checks or unchecks one subject
type ToggleSubjectRequest struct {
	Subject string `json:"subject" validate:"required"`
	Checked bool   `json:"checked"`
}

type draftCall func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error)

// withDraft resolves the caller and the :id parameter, runs call and renders the view.
func (h *DraftHandler) withDraft(c echo.Context, call draftCall) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Invalid identity in token")
	}

	view, err := call(c, identity, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDraftResponse(view))
}

// Open starts a draft prefilled from the caller's record.
func (h *DraftHandler) Open(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Invalid identity in token")
	}

	view, err := h.draftUC.Open(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newDraftResponse(view))
}

// Get returns the current step, fields and status.
func (h *DraftHandler) Get(c echo.Context) error {
	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.Get(c.Request().Context(), identity, id)
	})
}

// SetField handles a single field edit.
func (h *DraftHandler) SetField(c echo.Context) error {
	var req SetFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid field input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.SetField(c.Request().Context(), identity, id, req.Name, req.Value)
	})
}

// ToggleSubject handles a subject checkbox change.
func (h *DraftHandler) ToggleSubject(c echo.Context) error {
	var req ToggleSubjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid subject input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.ToggleSubject(c.Request().Context(), identity, id, req.Subject, req.Checked)
	})
}

// SelectAsset attaches the multipart "file" to the draft. It is uploaded on submit.
func (h *DraftHandler) SelectAsset(c echo.Context) error {
	fileHeader, err := c.FormFile(assetFormField)
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.WithStack(err)
	}

	asset := entity.Asset{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}

	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.SelectAsset(c.Request().Context(), identity, id, asset)
	})
}

// Next advances to the next step when the current one is complete.
func (h *DraftHandler) Next(c echo.Context) error {
	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.Next(c.Request().Context(), identity, id)
	})
}

// Back returns to the previous step.
func (h *DraftHandler) Back(c echo.Context) error {
	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.Back(c.Request().Context(), identity, id)
	})
}

// Submit uploads the selected asset and merge-commits the draft.
func (h *DraftHandler) Submit(c echo.Context) error {
	return h.withDraft(c, func(c echo.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
		return h.draftUC.Submit(c.Request().Context(), identity, id)
	})
}

// Discard closes the session without writing anything.
func (h *DraftHandler) Discard(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Invalid identity in token")
	}

	if err := h.draftUC.Discard(c.Request().Context(), identity, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
