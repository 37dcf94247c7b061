package firebase

import (
	"context"
	"log/slog"
	"net/http"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// authClient is the part of *auth.Client the provider uses.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
}

// passwordSignIn checks an email/password pair against the project's accounts.
type passwordSignIn func(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error)

type identityProvider struct {
	auth   authClient
	signIn passwordSignIn
	logger *slog.Logger
}

// NewIdentityProvider builds the Firebase Auth identity provider. Password
// sign-in goes through the Identity Toolkit API with the project's web API key.
func NewIdentityProvider(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	var apiKey string
	if cfg.Firebase != nil {
		apiKey = cfg.Firebase.APIKey
	}
	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return newIdentityProvider(client, func(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error) {
		return toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
			Email:             email,
			Password:          password,
			ReturnSecureToken: true,
		}).Context(ctx).Do()
	}, logger), nil
}

func newIdentityProvider(client authClient, signIn passwordSignIn, logger *slog.Logger) *identityProvider {
	return &identityProvider{auth: client, signIn: signIn, logger: logger}
}

func (p *identityProvider) CreateAccount(ctx context.Context, email, password, displayName string) (*entity.Account, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrAccountExists
		}

		return nil, domainerrors.ErrLookupFailed.WithCause(err)
	}

	return &entity.Account{
		Identity:    entity.Identity(user.UID),
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*entity.Account, error) {
	resp, err := p.signIn(ctx, email, password)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
			p.logger.Debug("Password sign-in rejected", slog.String("reason", apiErr.Message))

			return nil, domainerrors.ErrAuthFailed
		}

		return nil, domainerrors.ErrLookupFailed.WithCause(err)
	}

	return &entity.Account{
		Identity:    entity.Identity(resp.LocalId),
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
	}, nil
}

func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Account, error) {
	token, err := p.auth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if auth.IsIDTokenInvalid(err) || auth.IsIDTokenExpired(err) || auth.IsIDTokenRevoked(err) || auth.IsUserDisabled(err) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, domainerrors.ErrLookupFailed.WithCause(err)
	}

	account := &entity.Account{Identity: entity.Identity(token.UID)}
	if email, ok := token.Claims["email"].(string); ok {
		account.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		account.DisplayName = name
	}

	return account, nil
}

func (p *identityProvider) RevokeSessions(ctx context.Context, identity entity.Identity) error {
	if err := p.auth.RevokeRefreshTokens(ctx, identity.String()); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// DeleteAccount treats an already missing account as deleted.
func (p *identityProvider) DeleteAccount(ctx context.Context, identity entity.Identity) error {
	if err := p.auth.DeleteUser(ctx, identity.String()); err != nil && !auth.IsUserNotFound(err) {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
