// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans the order aggregate and its status history
// ledger, coordinating both repositories over a single database transaction.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Savepoints fence best-effort writes inside the transaction: the ledger
// append runs after SavePoint, and on failure RollbackToSavePoint discards
// only the append while the primary mutation still commits.
package postgres

import (
	"context"

	"tracking/internal/adapters/out/postgres/historyrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance. Each instance maintains its own
// transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions across the order and
// status history repositories. It tracks all aggregates modified during the
// transaction, which enables post-commit processing such as publishing
// domain events.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work. Multiple
// calls on the same instance are safe and do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SavePoint creates a named savepoint inside the current transaction.
func (uow *GormUnitOfWork) SavePoint(_ context.Context, name string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	return uow.tx.SavePoint(name).Error
}

// RollbackToSavePoint rolls the transaction back to a named savepoint,
// discarding everything written after it. The transaction itself stays open.
func (uow *GormUnitOfWork) RollbackToSavePoint(_ context.Context, name string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	return uow.tx.RollbackTo(name).Error
}

// OrderRepository provides access to order persistence operations within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise on the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// StatusHistoryRepository provides access to the status history ledger within
// the unit of work. Operations execute within the current transaction if one
// is active, otherwise on the main database connection.
func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return historyrepo.NewGormStatusHistoryRepository(db)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
