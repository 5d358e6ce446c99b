package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the same transaction, so a
// status write and its ledger event commit or roll back together. Client
// code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer; a no-op after Commit.
	Rollback(ctx context.Context) error

	// PackageRepository returns a PackageRepository bound to the current transaction.
	PackageRepository() PackageRepository

	// EventRepository returns an EventRepository bound to the current transaction.
	EventRepository() EventRepository

	// AttemptRepository returns an AttemptRepository bound to the current transaction.
	AttemptRepository() AttemptRepository

	// RuleRepository returns a RuleRepository bound to the current transaction.
	RuleRepository() RuleRepository

	// BatchRepository returns a BatchRepository bound to the current transaction.
	BatchRepository() BatchRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository
}
