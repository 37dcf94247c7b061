package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/domain/verification"
	"portal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const inviteCodeLength = 10

// inviteService implements the InviteUsecase interface.
type inviteService struct {
	invites  repository.InviteRepository
	hasher   service.CodeHasher
	validate *validator.Validate
	ttl      time.Duration
	now      service.Clock
	logger   *slog.Logger
}

// InviteServiceParams holds dependencies for InviteService, injected by Fx.
type InviteServiceParams struct {
	fx.In

	Invites repository.InviteRepository
	Hasher  service.CodeHasher
	Config  *config.Config
	Logger  *slog.Logger
	Clock   service.Clock `optional:"true"`
}

// NewInviteService is the constructor for inviteService.
func NewInviteService(params InviteServiceParams) usecase.InviteUsecase {
	now := params.Clock
	if now == nil {
		now = service.SystemClock
	}
	ttl := 7 * 24 * time.Hour
	if params.Config != nil && params.Config.Verification != nil && params.Config.Verification.InviteTTL > 0 {
		ttl = params.Config.Verification.InviteTTL
	}

	return &inviteService{
		invites:  params.Invites,
		hasher:   params.Hasher,
		validate: validator.New(),
		ttl:      ttl,
		now:      now,
		logger:   params.Logger,
	}
}

// Issue creates a fresh invite for email, replacing any earlier one, and returns the plaintext code.
func (srv *inviteService) Issue(ctx context.Context, email string) (*usecase.IssueInviteOutput, error) {
	email = verification.NormalizeEmail(email)
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("a valid email is required")
	}

	code := newInviteCode()
	hash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	issuedAt := srv.now()
	invite := &entity.Invite{
		Email:     email,
		CodeHash:  hash,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(srv.ttl),
	}
	if err := srv.invites.Save(ctx, invite); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreFailed.WithCause(err), "save invite")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Teacher invite issued",
		slog.String("email", email), slog.Time("expires_at", invite.ExpiresAt))

	return &usecase.IssueInviteOutput{Email: email, Code: code, ExpiresAt: invite.ExpiresAt}, nil
}

func newInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:inviteCodeLength]
}

// CodeVerifierParams holds dependencies for NewCodeVerifier, injected by Fx.
type CodeVerifierParams struct {
	fx.In

	Config  *config.Config
	Invites repository.InviteRepository
	Hasher  service.CodeHasher
}

// NewCodeVerifier selects the teacher code check configured in verification.mode.
func NewCodeVerifier(params CodeVerifierParams) (verification.CodeVerifier, error) {
	mode := config.VerificationDerived
	if params.Config != nil && params.Config.Verification != nil {
		mode = params.Config.Verification.Mode
	}

	switch mode {
	case config.VerificationDerived, "":
		return verification.NewNameCodeVerifier(), nil
	case config.VerificationInvite:
		return verification.NewInviteCodeVerifier(params.Invites, params.Hasher, nil), nil
	default:
		return nil, errors.Errorf("unknown verification mode: %s", mode)
	}
}
