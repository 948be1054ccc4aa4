package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and savepoints for best-effort writes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SavePoint creates a named savepoint within the current transaction.
	// Used to fence off best-effort writes (the ledger append) so their
	// failure does not poison the surrounding transaction.
	SavePoint(ctx context.Context, name string) error

	// RollbackToSavePoint rolls the transaction back to a named savepoint,
	// discarding only the writes made after it.
	RollbackToSavePoint(ctx context.Context, name string) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction. Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// StatusHistoryRepository returns a StatusHistoryRepository bound to the
	// current transaction.
	StatusHistoryRepository() StatusHistoryRepository
}
