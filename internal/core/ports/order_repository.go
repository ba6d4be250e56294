// Package ports defines the contracts between the core and its adapters:
// repositories over the document store, the unit of work, and the event
// publisher feeding the broadcast hub. Interfaces here enable dependency
// inversion and testability.
package ports

import (
	"context"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// There is no delete: cancellation is a status change, and history queries
// are served by the read-side query handlers.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns a not-found error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
