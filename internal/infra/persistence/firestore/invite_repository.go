package firestore

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

type inviteDocument struct {
	CodeHash   string     `firestore:"codeHash"`
	IssuedAt   time.Time  `firestore:"issuedAt"`
	ExpiresAt  time.Time  `firestore:"expiresAt"`
	ConsumedAt *time.Time `firestore:"consumedAt"`
}

// inviteRepository implements the domain.InviteRepository interface.
type inviteRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewInviteRepository is the constructor for inviteRepository.
func NewInviteRepository(client *firestore.Client) repository.InviteRepository {
	return &inviteRepository{client: client}
}

func (repo *inviteRepository) doc(email string) *firestore.DocumentRef {
	return repo.client.Collection(invitesCollection).Doc(email)
}

func (repo *inviteRepository) Find(ctx context.Context, email string) (*entity.Invite, error) {
	ref := repo.doc(email)

	var (
		snap *firestore.DocumentSnapshot
		err  error
	)
	if repo.tx != nil {
		snap, err = repo.tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrInviteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find invite")
	}

	var doc inviteDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode invite")
	}

	return &entity.Invite{
		Email:      email,
		CodeHash:   doc.CodeHash,
		IssuedAt:   doc.IssuedAt,
		ExpiresAt:  doc.ExpiresAt,
		ConsumedAt: doc.ConsumedAt,
	}, nil
}

func (repo *inviteRepository) Save(ctx context.Context, invite *entity.Invite) error {
	doc := inviteDocument{
		CodeHash:   invite.CodeHash,
		IssuedAt:   invite.IssuedAt,
		ExpiresAt:  invite.ExpiresAt,
		ConsumedAt: invite.ConsumedAt,
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Set(repo.doc(invite.Email), doc)
	} else {
		_, err = repo.doc(invite.Email).Set(ctx, doc)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save invite")
	}

	return nil
}

func (repo *inviteRepository) MarkConsumed(ctx context.Context, email string, at time.Time) error {
	updates := []firestore.Update{{Path: "consumedAt", Value: at}}

	var err error
	if repo.tx != nil {
		err = repo.tx.Update(repo.doc(email), updates)
	} else {
		_, err = repo.doc(email).Update(ctx, updates)
	}
	if err != nil {
		if isNotFound(err) {
			return domainerrors.ErrInviteNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to consume invite")
	}

	return nil
}
