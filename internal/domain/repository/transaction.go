package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to group writes without depending on a specific driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Stores without multi-document transactions run fn directly against their repositories.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewRoleRecordRepository returns a RoleRecordRepository bound to the current transaction.
	NewRoleRecordRepository() RoleRecordRepository

	// NewInviteRepository returns an InviteRepository bound to the current transaction.
	NewInviteRepository() InviteRepository
}
