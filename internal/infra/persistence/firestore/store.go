// Package firestore stores role records in one collection per role, keyed by
// identity, and invites in a collection keyed by email.
package firestore

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const invitesCollection = "teacherInvites"

// transactionManager runs callbacks inside a Firestore transaction. Writes made
// through the factory commit together; reads must precede writes.
type transactionManager struct {
	client *firestore.Client
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&txRepositoryFactory{client: tm.client, tx: tx})
	})

	return translateCommitError(err)
}

type txRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (f *txRepositoryFactory) NewRoleRecordRepository() repository.RoleRecordRepository {
	return &roleRecordRepository{client: f.client, tx: f.tx}
}

func (f *txRepositoryFactory) NewInviteRepository() repository.InviteRepository {
	return &inviteRepository{client: f.client, tx: f.tx}
}

// translateCommitError maps errors surfacing at commit. Errors returned by the
// callback already carry a domain kind and pass through.
func translateCommitError(err error) error {
	if err == nil {
		return nil
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch status.Code(err) {
	case codes.AlreadyExists:
		return domainerrors.ErrRecordExists
	case codes.Aborted, codes.FailedPrecondition:
		return domainerrors.ErrVersionConflict
	default:
		return domainerrors.NewDatabaseExecuteError(err, "firestore transaction failed")
	}
}

// toDocument replaces ServerTime placeholders with the Firestore sentinel.
func toDocument(fields entity.Fields) map[string]any {
	doc := make(map[string]any, len(fields))
	for k, v := range fields {
		if entity.IsServerTime(v) {
			v = firestore.ServerTimestamp
		}
		doc[k] = v
	}

	return doc
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
