package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/domain/verification"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager         repository.TransactionManager
	identityProvider  service.IdentityProvider
	verifier          verification.CodeVerifier
	publisher         service.EventPublisher
	passwordMinLength int
	now               service.Clock
	logger            *slog.Logger
}

// signupConfig describes one role's signup so both roles share executeSignup.
type signupConfig struct {
	Role           entity.Role
	Name           string
	Email          string
	RoleSpecificID string
	Password       string
	Confirm        string
	// Verify runs after local checks and before the account is created.
	Verify func(ctx context.Context) error
	// Decorate adds role-specific fields to the record before it is written.
	Decorate func(record *entity.RoleRecord)
	// OnCreated runs inside the record transaction.
	OnCreated func(ctx context.Context, repos repository.RepositoryFactory) error
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	IdentityProvider service.IdentityProvider
	Verifier         verification.CodeVerifier
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
	Clock            service.Clock `optional:"true"`
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	minLength := 0
	if params.Config != nil && params.Config.Auth != nil {
		minLength = params.Config.Auth.PasswordMinLength
	}
	now := params.Clock
	if now == nil {
		now = service.SystemClock
	}

	return &registrationService{
		txManager:         params.TxManager,
		identityProvider:  params.IdentityProvider,
		verifier:          params.Verifier,
		publisher:         params.Publisher,
		passwordMinLength: minLength,
		now:               now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterStudent creates a student account and its record.
func (srv *registrationService) RegisterStudent(ctx context.Context, input *usecase.RegisterStudentInput) (*usecase.RegisterOutput, error) {
	return srv.executeSignup(ctx, &signupConfig{
		Role:           entity.RoleStudent,
		Name:           input.Name,
		Email:          input.Email,
		RoleSpecificID: input.StudentID,
		Password:       input.Password,
		Confirm:        input.ConfirmPassword,
	})
}

// RegisterTeacher checks the verification code, then creates a teacher account and its record.
// A rejected code creates nothing.
func (srv *registrationService) RegisterTeacher(ctx context.Context, input *usecase.RegisterTeacherInput) (*usecase.RegisterOutput, error) {
	applicant := verification.Applicant{Name: input.Name, Email: input.Email}

	return srv.executeSignup(ctx, &signupConfig{
		Role:           entity.RoleTeacher,
		Name:           input.Name,
		Email:          input.Email,
		RoleSpecificID: input.TeacherID,
		Password:       input.Password,
		Confirm:        input.ConfirmPassword,
		Verify: func(ctx context.Context) error {
			return srv.verifyTeacher(ctx, applicant, input)
		},
		Decorate: func(record *entity.RoleRecord) {
			record.Subject = strings.TrimSpace(input.Subject)
		},
		OnCreated: func(ctx context.Context, repos repository.RepositoryFactory) error {
			return srv.verifier.Consume(ctx, repos.NewInviteRepository(), applicant)
		},
	})
}

// verifyTeacher checks the code a teacher applicant supplied. With derived codes the
// teacher ID is the code itself, so it is always the value checked and a separate
// verificationCode must agree with it. Invite codes are separate from the teacher ID
// and fall back to it only when no verificationCode was sent.
func (srv *registrationService) verifyTeacher(ctx context.Context, applicant verification.Applicant, input *usecase.RegisterTeacherInput) error {
	if _, derived := srv.verifier.(*verification.NameCodeVerifier); derived {
		if input.VerificationCode != "" && input.VerificationCode != input.TeacherID {
			return domainerrors.ErrVerificationFailed
		}

		return srv.verifier.Verify(ctx, applicant, input.TeacherID)
	}

	code := input.VerificationCode
	if code == "" {
		code = input.TeacherID
	}

	return srv.verifier.Verify(ctx, applicant, code)
}

func (srv *registrationService) executeSignup(ctx context.Context, cfg *signupConfig) (*usecase.RegisterOutput, error) {
	if err := srv.checkLocally(cfg); err != nil {
		srv.log(ctx).Debug("Signup rejected locally", slog.String("role", cfg.Role.String()), slog.Any("error", err))

		return nil, err
	}

	if cfg.Verify != nil {
		if err := cfg.Verify(ctx); err != nil {
			srv.log(ctx).Warn("Signup verification failed", slog.String("role", cfg.Role.String()), slog.String("email", cfg.Email))

			return nil, errors.Wrap(err, "verify signup")
		}
	}

	name := strings.TrimSpace(cfg.Name)
	email := strings.TrimSpace(cfg.Email)

	account, err := srv.identityProvider.CreateAccount(ctx, email, cfg.Password, name)
	if err != nil {
		srv.log(ctx).Warn("Account creation failed", slog.String("role", cfg.Role.String()), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "create account")
	}

	record := entity.NewRoleRecord(cfg.Role, account.Identity, name, email, strings.TrimSpace(cfg.RoleSpecificID))
	record.CreatedAt = srv.now()
	if cfg.Decorate != nil {
		cfg.Decorate(record)
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewRoleRecordRepository().Create(ctx, record); err != nil {
			return errors.Wrap(err, "create role record")
		}
		if cfg.OnCreated != nil {
			return cfg.OnCreated(ctx, repos)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Role record write failed, removing account",
			slog.String("role", cfg.Role.String()), slog.String("identity", account.Identity.String()), slog.Any("error", err))
		srv.compensate(ctx, account.Identity)

		if errors.Is(err, domainerrors.ErrRecordExists) {
			return nil, errors.Wrap(err, "register")
		}

		return nil, domainerrors.ErrStoreFailed.WithCause(err)
	}

	srv.publish(ctx, &entity.DomainEvent{
		Type:       entity.EventAccountRegistered,
		Identity:   account.Identity,
		Role:       cfg.Role,
		OccurredAt: record.CreatedAt,
	})

	srv.log(ctx).Info("Account registered", slog.String("role", cfg.Role.String()), slog.String("identity", account.Identity.String()))

	return &usecase.RegisterOutput{Record: record}, nil
}

// checkLocally runs every check that needs no collaborator.
func (srv *registrationService) checkLocally(cfg *signupConfig) error {
	var missing []string
	if strings.TrimSpace(cfg.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(cfg.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(cfg.RoleSpecificID) == "" {
		missing = append(missing, cfg.Role.IDField())
	}
	if cfg.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return domainerrors.ErrInvalidInput.WithDetails(strings.Join(missing, ","))
	}
	if utf8.RuneCountInString(cfg.Name) > verification.MaxNameLength {
		return domainerrors.ErrInvalidInput.WithDetails("name is too long")
	}

	if cfg.Password != cfg.Confirm {
		return domainerrors.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(cfg.Password) < srv.passwordMinLength {
		return domainerrors.ErrPasswordStrength
	}

	return nil
}

// compensate removes an account whose role record could not be written, so a retry can succeed.
func (srv *registrationService) compensate(ctx context.Context, identity entity.Identity) {
	if err := srv.identityProvider.DeleteAccount(ctx, identity); err != nil {
		srv.log(ctx).Error("Failed to remove orphaned account", slog.String("identity", identity.String()), slog.Any("error", err))
	}
}

func (srv *registrationService) publish(ctx context.Context, event *entity.DomainEvent) {
	publishBestEffort(ctx, srv.publisher, srv.log(ctx), event)
}
