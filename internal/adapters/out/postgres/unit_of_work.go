// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.PackageRepository().Add(ctx, pkg); err != nil {
//	    return err
//	}
//	if err := uow.EventRepository().Add(ctx, event); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances.
package postgres

import (
	"context"

	"lastmile/internal/adapters/out/postgres/assignmentrepo"
	"lastmile/internal/adapters/out/postgres/attemptrepo"
	"lastmile/internal/adapters/out/postgres/driverrepo"
	"lastmile/internal/adapters/out/postgres/eventrepo"
	"lastmile/internal/adapters/out/postgres/packagerepo"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for patterns like the outbox or post-commit event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with proper isolation from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations, using GORM's transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within this transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// A no-op when no transaction is open, so it is safe to defer alongside an
// explicit Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PackageRepository returns package persistence bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

// EventRepository returns event ledger persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// AttemptRepository returns delivery attempt persistence bound to the
// current transaction.
func (uow *GormUnitOfWork) AttemptRepository() ports.AttemptRepository {
	return attemptrepo.NewGormAttemptRepository(uow.conn())
}

// RuleRepository returns assignment rule persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) RuleRepository() ports.RuleRepository {
	return assignmentrepo.NewGormRuleRepository(uow.conn())
}

// BatchRepository returns assignment run persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) BatchRepository() ports.BatchRepository {
	return assignmentrepo.NewGormBatchRepository(uow.conn())
}

// DriverRepository returns driver persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
