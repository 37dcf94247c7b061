// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"portal/internal/domain/entity"
)

// MergeOptions controls a merge-write.
type MergeOptions struct {
	// CheckVersion makes the write fail with ErrVersionConflict unless the
	// stored version still equals ExpectedVersion.
	CheckVersion    bool
	ExpectedVersion int64
}

// RoleRecordRepository is the keyed document store holding one collection per role.
// Implementations return domain errors: ErrRecordNotFound, ErrRecordExists,
// ErrVersionConflict, or an error matching ErrStoreFailed for transport failures.
type RoleRecordRepository interface {
	// Find returns the record for (role, identity).
	Find(ctx context.Context, role entity.Role, identity entity.Identity) (*entity.RoleRecord, error)

	// Create writes a new record. It fails with ErrRecordExists when one is already stored.
	Create(ctx context.Context, record *entity.RoleRecord) error

	// Merge combines fields into the stored record, creating it when absent.
	// Stored fields missing from fields are kept. It returns the new version.
	Merge(ctx context.Context, role entity.Role, identity entity.Identity, fields entity.Fields, opts MergeOptions) (int64, error)
}
