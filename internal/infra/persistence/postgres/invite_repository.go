package postgres

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inviteRepository implements the domain.InviteRepository interface using GORM.
type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository is the constructor for inviteRepository.
func NewInviteRepository(db *gorm.DB) repository.InviteRepository {
	return &inviteRepository{db: db}
}

func (repo *inviteRepository) Find(ctx context.Context, email string) (*entity.Invite, error) {
	var inviteM model.InviteModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&inviteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInviteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find invite")
	}

	return &entity.Invite{
		Email:      inviteM.Email,
		CodeHash:   inviteM.CodeHash,
		IssuedAt:   inviteM.IssuedAt,
		ExpiresAt:  inviteM.ExpiresAt,
		ConsumedAt: inviteM.ConsumedAt,
	}, nil
}

// Save upserts by email, so re-issuing replaces the earlier code.
func (repo *inviteRepository) Save(ctx context.Context, invite *entity.Invite) error {
	inviteM := &model.InviteModel{
		Email:      invite.Email,
		CodeHash:   invite.CodeHash,
		IssuedAt:   invite.IssuedAt,
		ExpiresAt:  invite.ExpiresAt,
		ConsumedAt: invite.ConsumedAt,
	}
	if err := repo.db.WithContext(ctx).Save(inviteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save invite")
	}

	return nil
}

func (repo *inviteRepository) MarkConsumed(ctx context.Context, email string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InviteModel{}).
		Where("email = ?", email).
		Update("consumed_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume invite")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInviteNotFound
	}

	return nil
}
