// Package commands contains the write operations of the coordinator: order
// lifecycle changes, table administration, menu creation, and data seeding.
// Each command is a validated value object with a handler that runs the
// operation inside a unit of work and, for order operations, publishes a
// broadcast event after a successful commit.
package commands

import (
	"context"

	"tableservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, scoped to the repositories each handler actually needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// MenuRepoFactory provides access to the menu item repository within a transaction.
	MenuRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order lifecycle operations, which
	// write the order and flip the referenced table's status together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TableUoW manages transactions for administrative table operations.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// MenuUoW manages transactions for menu catalog writes.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// SeedUoW manages the seed transaction, which touches both the menu and
	// table collections.
	SeedUoW interface {
		TxManager
		MenuRepoFactory
		TableRepoFactory
	}

	// SeedUoWFactory creates seed unit of work instances.
	SeedUoWFactory interface {
		Create() SeedUoW
	}
)
