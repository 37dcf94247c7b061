package usecase

import (
	"context"
	"time"

	"portal/internal/domain/entity"
)

// LoginInput defines the data required to log in under a role.
type LoginInput struct {
	Role     entity.Role
	Email    string
	Password string
}

// ExchangeInput carries an ID token obtained by a client-side sign-in.
type ExchangeInput struct {
	Role    entity.Role
	IDToken string
}

// LoginOutput returns the role session after the gate admitted the identity.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    entity.Identity
	Role        entity.Role
	Record      *entity.RoleRecord
}

// SessionUsecase authenticates an identity and passes it through the role gate.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Exchange(ctx context.Context, input *ExchangeInput) (*LoginOutput, error)
}
