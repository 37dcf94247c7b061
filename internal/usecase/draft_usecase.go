package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// DraftView is a snapshot of an open draft session.
type DraftView struct {
	ID             string
	Step           int
	Status         string
	Reason         string
	Draft          entity.ProfileDraft
	AssetName      string
	Version        int64
	SubjectOptions []string
	RequiredFields []string
}

// DraftUsecase drives profile draft sessions for the signed-in student.
// Every operation returns the session state after it was applied, including on
// validation failures, so the page layer can re-render without a second call.
type DraftUsecase interface {
	Open(ctx context.Context, identity entity.Identity) (*DraftView, error)
	Get(ctx context.Context, identity entity.Identity, id string) (*DraftView, error)
	SetField(ctx context.Context, identity entity.Identity, id, name, value string) (*DraftView, error)
	ToggleSubject(ctx context.Context, identity entity.Identity, id, subject string, checked bool) (*DraftView, error)
	SelectAsset(ctx context.Context, identity entity.Identity, id string, asset entity.Asset) (*DraftView, error)
	Next(ctx context.Context, identity entity.Identity, id string) (*DraftView, error)
	Back(ctx context.Context, identity entity.Identity, id string) (*DraftView, error)
	Submit(ctx context.Context, identity entity.Identity, id string) (*DraftView, error)
	Discard(ctx context.Context, identity entity.Identity, id string) error
}
