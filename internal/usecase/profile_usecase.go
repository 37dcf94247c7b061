package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// ProfileOutput is the dashboard view of a role record.
type ProfileOutput struct {
	Record   *entity.RoleRecord
	Complete bool
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, role entity.Role, identity entity.Identity) (*ProfileOutput, error)
	StudentCard(ctx context.Context, identity entity.Identity) ([]byte, error)
}
