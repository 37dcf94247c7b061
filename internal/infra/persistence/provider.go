// Package persistence selects the role record backend named by store.provider.
package persistence

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	firestorestore "portal/internal/infra/persistence/firestore"
	"portal/internal/infra/persistence/memory"
	"portal/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of the store provider
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
	Clock  service.Clock `optional:"true"`
}

// Stores is the set of repositories backed by one provider
type Stores struct {
	fx.Out

	Records   repository.RoleRecordRepository
	Invites   repository.InviteRepository
	TxManager repository.TransactionManager
}

// New opens the configured store and registers its shutdown hook.
func New(params Params) (Stores, error) {
	provider := config.StoreMemory
	if params.Config.Store != nil && params.Config.Store.Provider != "" {
		provider = params.Config.Store.Provider
	}

	params.Logger.Info("Opening role record store", slog.String("provider", provider))

	switch provider {
	case config.StoreMemory:
		clock := params.Clock
		if clock == nil {
			clock = service.SystemClock
		}
		store := memory.NewStore(clock)

		return Stores{
			Records:   memory.NewRoleRecordRepository(store),
			Invites:   memory.NewInviteRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	case config.StorePostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Stores{}, err
		}

		return gormStores(db), nil

	case config.StoreSQLite:
		db, err := postgres.NewSQLite(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Stores{}, err
		}

		return gormStores(db), nil

	case config.StoreFirestore:
		if params.App == nil {
			return Stores{}, errors.New("firestore store requires a Firebase app")
		}
		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return Stores{}, errors.Wrap(err, "failed to create Firestore client")
		}
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return Stores{
			Records:   firestorestore.NewRoleRecordRepository(client),
			Invites:   firestorestore.NewInviteRepository(client),
			TxManager: firestorestore.NewTransactionManager(client),
		}, nil

	default:
		return Stores{}, errors.Errorf("unknown store provider: %s", provider)
	}
}

func gormStores(db *gorm.DB) Stores {
	return Stores{
		Records:   postgres.NewRoleRecordRepository(db),
		Invites:   postgres.NewInviteRepository(db),
		TxManager: postgres.NewTransactionManager(db),
	}
}
