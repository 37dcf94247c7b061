// Package memory keeps role records and invites in process memory. It backs
// local runs and tests and loses everything on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
)

type recordKey struct {
	role     entity.Role
	identity entity.Identity
}

type storedRecord struct {
	fields  entity.Fields
	version int64
}

// Store holds every collection behind one mutex.
type Store struct {
	mu      sync.RWMutex
	records map[recordKey]*storedRecord
	invites map[string]entity.Invite
	now     service.Clock
}

// NewStore creates an empty Store.
func NewStore(now service.Clock) *Store {
	if now == nil {
		now = service.SystemClock
	}

	return &Store{
		records: make(map[recordKey]*storedRecord),
		invites: make(map[string]entity.Invite),
		now:     now,
	}
}

// NewRoleRecordRepository returns the store's record collection.
func NewRoleRecordRepository(s *Store) repository.RoleRecordRepository {
	return &roleRecordRepository{store: s}
}

// NewInviteRepository returns the store's invite collection.
func NewInviteRepository(s *Store) repository.InviteRepository {
	return &inviteRepository{store: s}
}

// NewTransactionManager runs callbacks directly against the store. Writes made
// before a failing step are not rolled back.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

func (tm *transactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm *transactionManager) NewRoleRecordRepository() repository.RoleRecordRepository {
	return NewRoleRecordRepository(tm.store)
}

func (tm *transactionManager) NewInviteRepository() repository.InviteRepository {
	return NewInviteRepository(tm.store)
}

type roleRecordRepository struct {
	store *Store
}

func (repo *roleRecordRepository) Find(ctx context.Context, role entity.Role, identity entity.Identity) (*entity.RoleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find role record")
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	stored, ok := repo.store.records[recordKey{role, identity}]
	if !ok {
		return nil, domainerrors.ErrRecordNotFound
	}

	fields := stored.fields.Clone()
	fields[entity.FieldVersion] = stored.version

	return entity.DecodeRoleRecord(role, identity, fields), nil
}

func (repo *roleRecordRepository) Create(ctx context.Context, record *entity.RoleRecord) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create role record")
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	key := recordKey{record.Role, record.Identity}
	if _, ok := repo.store.records[key]; ok {
		return domainerrors.ErrRecordExists
	}

	fields := record.Fields()
	if record.CreatedAt.IsZero() {
		fields[entity.FieldCreatedAt] = repo.store.now()
	}
	repo.store.records[key] = &storedRecord{fields: fields, version: 1}
	record.Version = 1

	return nil
}

func (repo *roleRecordRepository) Merge(ctx context.Context, role entity.Role, identity entity.Identity, fields entity.Fields, opts repository.MergeOptions) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "merge role record")
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	key := recordKey{role, identity}
	stored, ok := repo.store.records[key]
	if !ok {
		stored = &storedRecord{fields: entity.Fields{}}
	}
	if opts.CheckVersion && stored.version != opts.ExpectedVersion {
		return 0, domainerrors.ErrVersionConflict
	}

	repo.store.records[key] = &storedRecord{
		fields:  fields.MergeInto(stored.fields, repo.store.now()),
		version: stored.version + 1,
	}

	return stored.version + 1, nil
}

type inviteRepository struct {
	store *Store
}

func (repo *inviteRepository) Find(_ context.Context, email string) (*entity.Invite, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	invite, ok := repo.store.invites[email]
	if !ok {
		return nil, domainerrors.ErrInviteNotFound
	}

	return &invite, nil
}

func (repo *inviteRepository) Save(_ context.Context, invite *entity.Invite) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.invites[invite.Email] = *invite

	return nil
}

func (repo *inviteRepository) MarkConsumed(_ context.Context, email string, at time.Time) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	invite, ok := repo.store.invites[email]
	if !ok {
		return domainerrors.ErrInviteNotFound
	}
	invite.ConsumedAt = &at
	repo.store.invites[email] = invite

	return nil
}
