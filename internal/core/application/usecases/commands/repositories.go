// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cafe/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ItemRepoFactory provides access to item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TaxRateRepoFactory provides access to the tax rate repository within a transaction.
	TaxRateRepoFactory interface {
		TaxRateRepository() ports.TaxRateRepository
	}

	// ItemUoW manages transactions for catalog-only operations.
	// Used when commands only modify item aggregates.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new catalog unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// TaxUoW manages transactions for tax rate operations.
	TaxUoW interface {
		TxManager
		TaxRateRepoFactory
	}

	// TaxUoWFactory creates new tax unit of work instances.
	TaxUoWFactory interface {
		Create() TaxUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across order, item, and tax rate storage.
	// Used for commands that coordinate changes between multiple aggregate types,
	// such as order placement (reads catalog and tax rate, writes the order) and
	// fulfillment (writes the order and decrements items).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   itemRepo := uow.ItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ItemRepoFactory
		OrderRepoFactory
		TaxRateRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
