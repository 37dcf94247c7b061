package impl

import (
	"context"
	"log/slog"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityProvider service.IdentityProvider
	gate             usecase.RoleGateUsecase
	tokenService     service.TokenService
	revokeOnDenied   bool
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	Gate             usecase.RoleGateUsecase
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	revoke := true
	if params.Config != nil && params.Config.Auth != nil {
		revoke = params.Config.Auth.OnDenied != config.OnDeniedKeep
	}

	return &sessionService{
		identityProvider: params.IdentityProvider,
		gate:             params.Gate,
		tokenService:     params.TokenService,
		revokeOnDenied:   revoke,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs in with email and password, then admits the identity through the role gate.
// Both roles apply the same checks.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown role")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("email and password are required")
	}

	account, err := srv.identityProvider.SignIn(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("role", input.Role.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign in")
	}

	return srv.enter(ctx, account, input.Role)
}

// Exchange admits an identity that signed in on the client and presents its ID token.
func (srv *sessionService) Exchange(ctx context.Context, input *usecase.ExchangeInput) (*usecase.LoginOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown role")
	}
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("id token is required")
	}

	account, err := srv.identityProvider.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("ID token rejected", slog.String("role", input.Role.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "verify id token")
	}

	return srv.enter(ctx, account, input.Role)
}

// enter runs the role gate and, when allowed, issues a role session token.
// A denied identity is signed out at the provider unless the policy keeps it.
func (srv *sessionService) enter(ctx context.Context, account *entity.Account, role entity.Role) (*usecase.LoginOutput, error) {
	admission, err := srv.gate.Admit(ctx, account.Identity, role)
	if err != nil {
		return nil, errors.Wrap(err, "admit")
	}

	if !admission.Allowed() {
		srv.log(ctx).Info("Identity not registered for role",
			slog.String("role", role.String()), slog.String("identity", account.Identity.String()), slog.Bool("revoke", srv.revokeOnDenied))
		if srv.revokeOnDenied {
			if err := srv.identityProvider.RevokeSessions(ctx, account.Identity); err != nil {
				srv.log(ctx).Error("Failed to revoke sessions of denied identity",
					slog.String("identity", account.Identity.String()), slog.Any("error", err))
			}
		}

		return nil, domainerrors.ErrNotRegisteredForRole
	}

	token, expiresAt, err := srv.tokenService.IssueRoleToken(account.Identity, role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue role token", slog.String("identity", account.Identity.String()), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Identity:    account.Identity,
		Role:        role,
		Record:      admission.Record,
	}, nil
}
