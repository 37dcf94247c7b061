package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// RoleGateUsecase decides whether an authenticated identity may enter a role's dashboard.
type RoleGateUsecase interface {
	// Admit performs exactly one record lookup. A missing record is a Denied
	// admission with a nil error; a failed lookup returns LookupFailed and an
	// error matching ErrLookupFailed.
	Admit(ctx context.Context, identity entity.Identity, role entity.Role) (*entity.Admission, error)
}
