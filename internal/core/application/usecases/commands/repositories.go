// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle, including savepoints
	// for best-effort writes inside a transaction.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		SavePoint(ctx context.Context, name string) error
		RollbackToSavePoint(ctx context.Context, name string) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusHistoryRepoFactory provides access to the status history
	// repository within a transaction.
	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	// UoW manages transactions spanning the order aggregate and its status
	// history ledger. Every command in this package mutates an order and
	// appends to its history, so there is a single unit-of-work shape.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   historyRepo := uow.StatusHistoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StatusHistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
