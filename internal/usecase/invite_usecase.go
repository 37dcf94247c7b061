package usecase

import (
	"context"
	"time"
)

// IssueInviteOutput carries the plaintext code, shown once to the admin.
type IssueInviteOutput struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

// InviteUsecase issues teacher invites.
type InviteUsecase interface {
	Issue(ctx context.Context, email string) (*IssueInviteOutput, error)
}
