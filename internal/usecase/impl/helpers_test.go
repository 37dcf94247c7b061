package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestFactory(t *testing.T) (*mockRepo.MockRepositoryFactory, *mockRepo.MockRoleRecordRepository, *mockRepo.MockInviteRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	records := mockRepo.NewMockRoleRecordRepository(t)
	invites := mockRepo.NewMockInviteRepository(t)

	factory.EXPECT().NewRoleRecordRepository().Return(records).Maybe()
	factory.EXPECT().NewInviteRepository().Return(invites).Maybe()

	return factory, records, invites
}
