package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	records repository.RoleRecordRepository
	qrCodes service.QRCodeService
	logger  *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	records repository.RoleRecordRepository,
	qrCodes service.QRCodeService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		records: records,
		qrCodes: qrCodes,
		logger:  logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the dashboard view of the caller's record.
func (srv *profileService) GetProfile(ctx context.Context, role entity.Role, identity entity.Identity) (*usecase.ProfileOutput, error) {
	record, err := srv.find(ctx, role, identity)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{Record: record, Complete: record.IsComplete()}, nil
}

// StudentCard renders the student's card as a PNG QR code.
func (srv *profileService) StudentCard(ctx context.Context, identity entity.Identity) ([]byte, error) {
	record, err := srv.find(ctx, entity.RoleStudent, identity)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateStudentCard(record)
	if err != nil {
		srv.log(ctx).Error("Failed to render student card", slog.String("identity", identity.String()), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	return png, nil
}

func (srv *profileService) find(ctx context.Context, role entity.Role, identity entity.Identity) (*entity.RoleRecord, error) {
	if identity.IsZero() || !role.IsValid() {
		return nil, domainerrors.ErrInvalidInput
	}

	record, err := srv.records.Find(ctx, role, identity)
	if err != nil {
		if errors.Is(err, domainerrors.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "find profile")
		}
		srv.log(ctx).Error("Failed to load profile", slog.String("role", role.String()), slog.Any("error", err))

		return nil, domainerrors.ErrLookupFailed.WithCause(err)
	}

	return record, nil
}
