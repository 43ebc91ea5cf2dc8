// Package commands contains business operations that modify the fulfillment board.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// board lock, load, mutation and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BoardLocker serializes writers of the order sequence.
	BoardLocker interface {
		LockBoard(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HandlerRepoFactory provides access to handler repository within a transaction.
	HandlerRepoFactory interface {
		HandlerRepository() ports.HandlerRepository
	}

	// HandlerUoW manages transactions for roster-only operations. Roster writes
	// take the board lock too, since assignment reads the roster under it.
	HandlerUoW interface {
		TxManager
		BoardLocker
		HandlerRepoFactory
	}

	// HandlerUoWFactory creates new handler unit of work instances.
	HandlerUoWFactory interface {
		Create() HandlerUoW
	}

	// UoW manages transactions across the board and the roster.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.LockBoard(ctx)
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BoardLocker
		OrderRepoFactory
		HandlerRepoFactory
	}

	// UoWFactory creates new unit of work instances for board operations.
	UoWFactory interface {
		Create() UoW
	}
)
