package firestore

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// roleRecordRepository implements the domain.RoleRecordRepository interface.
// Inside a transaction every call goes through tx.
type roleRecordRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewRoleRecordRepository is the constructor for roleRecordRepository.
func NewRoleRecordRepository(client *firestore.Client) repository.RoleRecordRepository {
	return &roleRecordRepository{client: client}
}

func (repo *roleRecordRepository) doc(role entity.Role, identity entity.Identity) *firestore.DocumentRef {
	return repo.client.Collection(role.Collection()).Doc(identity.String())
}

func (repo *roleRecordRepository) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if repo.tx != nil {
		return repo.tx.Get(ref)
	}

	return ref.Get(ctx)
}

// Find reads the record document. A missing document is ErrRecordNotFound.
func (repo *roleRecordRepository) Find(ctx context.Context, role entity.Role, identity entity.Identity) (*entity.RoleRecord, error) {
	if !role.IsValid() || identity.IsZero() {
		return nil, domainerrors.ErrInvalidInput
	}

	snap, err := repo.get(ctx, repo.doc(role, identity))
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role record")
	}

	return entity.DecodeRoleRecord(role, identity, snap.Data()), nil
}

// Create writes the signup document and fails when one already exists.
func (repo *roleRecordRepository) Create(ctx context.Context, record *entity.RoleRecord) error {
	fields := record.Fields()
	if record.CreatedAt.IsZero() {
		fields[entity.FieldCreatedAt] = entity.ServerTime
	}
	fields[entity.FieldVersion] = int64(1)
	ref := repo.doc(record.Role, record.Identity)

	if repo.tx != nil {
		if err := repo.tx.Create(ref, toDocument(fields)); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create role record")
		}
		record.Version = 1

		return nil
	}

	if _, err := ref.Create(ctx, toDocument(fields)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domainerrors.ErrRecordExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role record")
	}
	record.Version = 1

	return nil
}

// Merge overlays fields on the stored document with MergeAll, bumping the version
// in the same transaction that checks it.
func (repo *roleRecordRepository) Merge(ctx context.Context, role entity.Role, identity entity.Identity, fields entity.Fields, opts repository.MergeOptions) (int64, error) {
	if repo.tx != nil {
		return repo.merge(repo.tx, role, identity, fields, opts)
	}

	var version int64
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		var err error
		version, err = repo.merge(tx, role, identity, fields, opts)

		return err
	})
	if err != nil {
		return 0, translateCommitError(err)
	}

	return version, nil
}

func (repo *roleRecordRepository) merge(tx *firestore.Transaction, role entity.Role, identity entity.Identity, fields entity.Fields, opts repository.MergeOptions) (int64, error) {
	ref := repo.doc(role, identity)

	var current int64
	snap, err := tx.Get(ref)
	switch {
	case err == nil:
		current = entity.Fields(snap.Data()).Int64(entity.FieldVersion)
	case isNotFound(err):
	default:
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to read role record")
	}

	if opts.CheckVersion && current != opts.ExpectedVersion {
		return 0, domainerrors.ErrVersionConflict
	}

	doc := toDocument(fields)
	doc[entity.FieldVersion] = current + 1
	if err := tx.Set(ref, doc, firestore.MergeAll); err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to merge role record")
	}

	return current + 1, nil
}
