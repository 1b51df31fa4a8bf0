package ports

import (
	"context"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and locking orders together
// with their line snapshots.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order's lines are replaced wholesale with the aggregate's lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order aggregate and its lines from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line snapshots.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes a row lock on it for the
	// duration of the current transaction. Used by the lifecycle engine so
	// concurrent transition requests on the same order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
