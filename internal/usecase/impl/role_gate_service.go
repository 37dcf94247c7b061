// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/usecase"

	"github.com/pkg/errors"
)

// roleGateService implements the RoleGateUsecase interface.
type roleGateService struct {
	records repository.RoleRecordRepository
	logger  *slog.Logger
}

// NewRoleGateService is the constructor for roleGateService.
func NewRoleGateService(records repository.RoleRecordRepository, logger *slog.Logger) usecase.RoleGateUsecase {
	return &roleGateService{
		records: records,
		logger:  logger,
	}
}

func (srv *roleGateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Admit looks up (role, identity) once, without retry or cache.
func (srv *roleGateService) Admit(ctx context.Context, identity entity.Identity, role entity.Role) (*entity.Admission, error) {
	if identity.IsZero() || !role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("identity and a valid role are required")
	}

	admission := &entity.Admission{Identity: identity, Role: role}

	record, err := srv.records.Find(ctx, role, identity)
	switch {
	case err == nil:
		admission.Decision = entity.DecisionAllowed
		admission.Record = record
	case errors.Is(err, domainerrors.ErrRecordNotFound):
		admission.Decision = entity.DecisionDenied
	default:
		srv.log(ctx).Error("Role record lookup failed",
			slog.String("role", role.String()), slog.String("identity", identity.String()), slog.Any("error", err))
		admission.Decision = entity.DecisionLookupFailed

		return admission, domainerrors.ErrLookupFailed.WithCause(err)
	}

	srv.log(ctx).Debug("Role gate decision",
		slog.String("role", role.String()), slog.String("identity", identity.String()),
		slog.String("decision", admission.Decision.String()))

	return admission, nil
}
