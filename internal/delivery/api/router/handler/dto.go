package handler

import (
	"time"

	"portal/internal/domain/entity"
	"portal/internal/usecase"
)

// RecordResponse is the public view of a role record.
type RecordResponse struct {
	Identity       string               `json:"identity"`
	Role           string               `json:"role"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	RoleSpecificID string               `json:"roleSpecificId"`
	Subject        string               `json:"subject,omitempty"`
	Profile        *entity.ProfileDraft `json:"profile,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      *time.Time           `json:"updatedAt,omitempty"`
	Version        int64                `json:"version"`
}

func newRecordResponse(record *entity.RoleRecord) *RecordResponse {
	if record == nil {
		return nil
	}

	resp := &RecordResponse{
		Identity:       record.Identity.String(),
		Role:           record.Role.String(),
		Name:           record.DisplayName,
		Email:          record.ContactEmail,
		RoleSpecificID: record.RoleSpecificID,
		Subject:        record.Subject,
		CreatedAt:      record.CreatedAt,
		Version:        record.Version,
	}
	if record.Role == entity.RoleStudent {
		profile := record.Profile
		resp.Profile = &profile
	}
	if !record.UpdatedAt.IsZero() {
		updatedAt := record.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// SessionResponse is returned by login and exchange.
type SessionResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Identity    string          `json:"identity"`
	Role        string          `json:"role"`
	Record      *RecordResponse `json:"record"`
}

func newSessionResponse(output *usecase.LoginOutput) *SessionResponse {
	return &SessionResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
		Identity:    output.Identity.String(),
		Role:        output.Role.String(),
		Record:      newRecordResponse(output.Record),
	}
}

// DraftResponse is the state of a draft session after an operation.
type DraftResponse struct {
	ID             string              `json:"id"`
	Step           int                 `json:"step"`
	Status         string              `json:"status"`
	Reason         string              `json:"reason,omitempty"`
	Fields         entity.ProfileDraft `json:"fields"`
	AssetName      string              `json:"assetName,omitempty"`
	Version        int64               `json:"version"`
	SubjectOptions []string            `json:"subjectOptions"`
	RequiredFields []string            `json:"requiredFields"`
}

func newDraftResponse(view *usecase.DraftView) *DraftResponse {
	if view == nil {
		return nil
	}

	return &DraftResponse{
		ID:             view.ID,
		Step:           view.Step,
		Status:         view.Status,
		Reason:         view.Reason,
		Fields:         view.Draft,
		AssetName:      view.AssetName,
		Version:        view.Version,
		SubjectOptions: view.SubjectOptions,
		RequiredFields: view.RequiredFields,
	}
}
