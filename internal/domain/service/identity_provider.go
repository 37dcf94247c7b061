// Package service defines interfaces for the external capabilities the domain relies on.
package service

import (
	"context"

	"portal/internal/domain/entity"
)

// IdentityProvider is the external authentication provider.
// Implementations convert provider failures to domain errors:
// ErrAccountExists, ErrAuthFailed, ErrTokenInvalid or ErrLookupFailed.
type IdentityProvider interface {
	// CreateAccount registers a new email/password account and returns its identity.
	CreateAccount(ctx context.Context, email, password, displayName string) (*entity.Account, error)

	// SignIn checks an email/password pair and returns the signed-in account.
	SignIn(ctx context.Context, email, password string) (*entity.Account, error)

	// VerifyIDToken validates an ID token issued to a client-side session.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Account, error)

	// RevokeSessions invalidates every session issued to identity.
	RevokeSessions(ctx context.Context, identity entity.Identity) error

	// DeleteAccount removes the account.
	DeleteAccount(ctx context.Context, identity entity.Identity) error
}
