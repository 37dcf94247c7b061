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

// maxMergeAttempts bounds the read-modify-write retries of an unchecked merge.
const maxMergeAttempts = 3

var errMergeContention = errors.New("record kept changing during merge")

// roleRecordRepository implements the domain.RoleRecordRepository interface using GORM.
type roleRecordRepository struct {
	db *gorm.DB
}

// NewRoleRecordRepository is the constructor for roleRecordRepository.
func NewRoleRecordRepository(db *gorm.DB) repository.RoleRecordRepository {
	return &roleRecordRepository{db: db}
}

// Find retrieves the record stored for (role, identity).
func (repo *roleRecordRepository) Find(ctx context.Context, role entity.Role, identity entity.Identity) (*entity.RoleRecord, error) {
	recordM, err := repo.take(repo.db.WithContext(ctx), role, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role record")
	}

	return toRoleRecordDomain(recordM), nil
}

// Create inserts the signup record. The primary key rejects a second record for the same (role, identity).
func (repo *roleRecordRepository) Create(ctx context.Context, record *entity.RoleRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	recordM := fromRoleRecordDomain(record)
	recordM.Version = 1

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRecordExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role record")
	}

	record.Version = recordM.Version
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// Merge reads the stored document, overlays fields and writes it back guarded by
// the version it read. Without a version check a lost race is retried.
func (repo *roleRecordRepository) Merge(ctx context.Context, role entity.Role, identity entity.Identity, fields entity.Fields, opts repository.MergeOptions) (int64, error) {
	db := repo.db.WithContext(ctx)

	for range maxMergeAttempts {
		version, err := repo.mergeOnce(db, role, identity, fields, opts)
		if !errors.Is(err, errMergeContention) {
			return version, err
		}
		if opts.CheckVersion {
			return 0, domainerrors.ErrVersionConflict
		}
	}

	return 0, domainerrors.NewDatabaseExecuteError(errMergeContention, "failed to merge role record")
}

func (repo *roleRecordRepository) mergeOnce(db *gorm.DB, role entity.Role, identity entity.Identity, fields entity.Fields, opts repository.MergeOptions) (int64, error) {
	now := time.Now().UTC()

	recordM, err := repo.take(db, role, identity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if opts.CheckVersion && opts.ExpectedVersion != 0 {
			return 0, domainerrors.ErrVersionConflict
		}

		created := &model.RoleRecordModel{
			Role:       role.String(),
			IdentityID: identity.String(),
			Document:   fields.MergeInto(entity.Fields{}, now),
			Version:    1,
		}
		if err := db.Create(created).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return 0, errMergeContention
			}

			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to create role record")
		}

		return created.Version, nil
	}
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to read role record")
	}

	if opts.CheckVersion && recordM.Version != opts.ExpectedVersion {
		return 0, domainerrors.ErrVersionConflict
	}

	next := recordM.Version + 1
	result := db.Model(&model.RoleRecordModel{}).
		Where("role = ? AND identity_id = ? AND version = ?", recordM.Role, recordM.IdentityID, recordM.Version).
		Updates(&model.RoleRecordModel{
			Document: fields.MergeInto(recordM.Document, now),
			Version:  next,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to merge role record")
	}
	if result.RowsAffected == 0 {
		return 0, errMergeContention
	}

	return next, nil
}

func (repo *roleRecordRepository) take(db *gorm.DB, role entity.Role, identity entity.Identity) (*model.RoleRecordModel, error) {
	var recordM model.RoleRecordModel
	err := db.Where("role = ? AND identity_id = ?", role.String(), identity.String()).Take(&recordM).Error
	if err != nil {
		return nil, err
	}

	return &recordM, nil
}

func fromRoleRecordDomain(record *entity.RoleRecord) *model.RoleRecordModel {
	return &model.RoleRecordModel{
		Role:       record.Role.String(),
		IdentityID: record.Identity.String(),
		Document:   record.Fields(),
		Version:    record.Version,
		CreatedAt:  record.CreatedAt,
	}
}

func toRoleRecordDomain(recordM *model.RoleRecordModel) *entity.RoleRecord {
	fields := entity.Fields(recordM.Document).Clone()
	fields[entity.FieldVersion] = recordM.Version
	if _, ok := fields[entity.FieldCreatedAt]; !ok {
		fields[entity.FieldCreatedAt] = recordM.CreatedAt
	}
	if _, ok := fields[entity.FieldUpdatedAt]; !ok && !recordM.UpdatedAt.IsZero() {
		fields[entity.FieldUpdatedAt] = recordM.UpdatedAt
	}

	return entity.DecodeRoleRecord(entity.Role(recordM.Role), entity.Identity(recordM.IdentityID), fields)
}
