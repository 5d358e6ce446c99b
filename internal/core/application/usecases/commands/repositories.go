// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lastmile/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest UoW that covers the repositories it
// touches, so tests mock only what a handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// EventRepoFactory provides access to the event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// AttemptRepoFactory provides access to the attempt repository within a transaction.
	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	// RuleRepoFactory provides access to the rule repository within a transaction.
	RuleRepoFactory interface {
		RuleRepository() ports.RuleRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// LedgerUoW manages transactions over packages and their history events.
	// Every write that changes a package's status goes through this pair so
	// the ledger stays consistent with the aggregate.
	LedgerUoW interface {
		TxManager
		PackageRepoFactory
		EventRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// AssignmentUoW manages transactions for explicit and area-based driver
	// assignment, which verify the driver and write packages and events.
	AssignmentUoW interface {
		TxManager
		PackageRepoFactory
		EventRepoFactory
		DriverRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// RuleRunUoW manages transactions for rule-driven assignment runs, which
	// read rules, write packages and events, and record a batch.
	RuleRunUoW interface {
		TxManager
		PackageRepoFactory
		EventRepoFactory
		RuleRepoFactory
		BatchRepoFactory
	}

	// RuleRunUoWFactory creates new rule run unit of work instances.
	RuleRunUoWFactory interface {
		Create() RuleRunUoW
	}

	// DeliveryUoW manages transactions for field resolutions: the package,
	// its event, and the delivery attempt with proof-of-delivery commit
	// together. The driver repository backs the acting-driver check.
	DeliveryUoW interface {
		TxManager
		PackageRepoFactory
		EventRepoFactory
		AttemptRepoFactory
		DriverRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// FleetUoW manages transactions for driver directory operations.
	FleetUoW interface {
		TxManager
		DriverRepoFactory
		RuleRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}
)
