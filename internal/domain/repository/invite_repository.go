package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"
)

// InviteRepository persists teacher invites keyed by lower-cased email.
type InviteRepository interface {
	// Find returns the invite issued for email, or ErrInviteNotFound.
	Find(ctx context.Context, email string) (*entity.Invite, error)

	// Save stores the invite, replacing any earlier one for the same email.
	Save(ctx context.Context, invite *entity.Invite) error

	// MarkConsumed records that the invite was redeemed at the given time.
	MarkConsumed(ctx context.Context, email string, at time.Time) error
}
